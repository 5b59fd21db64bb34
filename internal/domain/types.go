package domain

// NoticeKind distinguishes success toasts from validation toasts.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient, non-blocking message shown on the current screen.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

func Success(msg string) *Notice {
	return &Notice{Kind: NoticeSuccess, Message: msg}
}

// NoticeFromError turns a validation failure into an error notice. Any other
// error yields nil.
func NoticeFromError(err error) *Notice {
	if err == nil || !IsValidation(err) {
		return nil
	}
	return &Notice{Kind: NoticeError, Message: err.Error()}
}
