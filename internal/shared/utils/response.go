package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portalkit/portalkit/internal/shared/errors"
)

// APIResponse is the envelope every JSON endpoint answers with.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// ErrorInfo describes a failed request. Code is the message catalog code
// when one applies. Detail repeats the message of client errors for callers
// that only read a detail string; it is empty on 5xx.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

// NewErrorInfo builds the error body for status.
func NewErrorInfo(statusCode int, errType, message string) *ErrorInfo {
	info := &ErrorInfo{Type: errType, Message: message}
	if statusCode < http.StatusInternalServerError {
		info.Detail = message
	}
	return info
}

type ListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// CodeResponse answers with a catalog code the client renders itself.
func CodeResponse(c *gin.Context, statusCode int, code string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
		Code:    code,
	})
}

func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Message: "Resource created successfully",
	}
	if len(message) > 0 {
		response.Message = message[0]
	}

	c.JSON(http.StatusCreated, response)
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   NewErrorInfo(statusCode, "error", message),
	})
}

// ErrorResponseWithError maps an AppError to its status. Any other error is
// reported as a generic 500 without details.
func ErrorResponseWithError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	info := NewErrorInfo(statusCode, string(errors.ErrorTypeInternal), "Internal server error occurred")

	if appErr := errors.GetAppError(err); appErr != nil {
		statusCode = appErr.Code
		info = NewErrorInfo(statusCode, string(appErr.Type), appErr.Message)
		info.Details = appErr.Details
		info.Code = appErr.MessageCode
	}

	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   info,
	})
}

func ListSuccessResponse(c *gin.Context, items interface{}, total int64, page, pageSize int, message ...string) {
	response := APIResponse{
		Success: true,
		Data: ListResponse{
			Items:      items,
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: TotalPages(total, pageSize),
		},
	}
	if len(message) > 0 {
		response.Message = message[0]
	}

	c.JSON(http.StatusOK, response)
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
