package gemini

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// ErrorKind groups API failures the way they are reported to users.
type ErrorKind int

const (
	ErrorKindOther ErrorKind = iota
	ErrorKindQuota
	ErrorKindModel
)

// ClassifyError maps an error from GenerateContent to an ErrorKind.
// Status codes are used when available, otherwise the message text.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return ErrorKindOther
	}

	switch apiStatus(err) {
	case http.StatusTooManyRequests:
		return ErrorKindQuota
	case http.StatusNotFound:
		return ErrorKindModel
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"), strings.Contains(msg, "quota"), strings.Contains(msg, "exceeded"):
		return ErrorKindQuota
	case strings.Contains(msg, "not found"), strings.Contains(msg, "404"), strings.Contains(msg, "not supported"):
		return ErrorKindModel
	}
	return ErrorKindOther
}

func apiStatus(err error) int {
	var v genai.APIError
	if errors.As(err, &v) {
		return v.Code
	}
	var p *genai.APIError
	if errors.As(err, &p) && p != nil {
		return p.Code
	}
	return 0
}
