package hermes

import "time"

const (
	StreamName     = "DECIDE_EVALUATIONS"
	StreamSubjects = "decide.evaluation.>"
	StreamMaxAge   = 30 * 24 * time.Hour
)

const SubjectEvaluationRejected = "decide.evaluation.rejected"

func SubjectEvaluationCompleted(evaluationID string) string {
	return "decide.evaluation." + evaluationID + ".completed"
}
