package domain

type CtxKey string

const (
	KeyUserEmail CtxKey = "Email"
	KeySession   CtxKey = "Session"
	KeyRequestID CtxKey = "RequestID"
)
