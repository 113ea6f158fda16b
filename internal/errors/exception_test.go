package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "task not found", err: ErrTaskNotFound, want: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("get task 7: %w", ErrTaskNotFound), want: http.StatusNotFound},
		{name: "invalid limit", err: ErrInvalidLimit, want: http.StatusUnprocessableEntity},
		{name: "plain error", err: errors.New("disk I/O error"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestException_Error(t *testing.T) {
	assert.Equal(t, "Task not found", ErrTaskNotFound.Error())
}
