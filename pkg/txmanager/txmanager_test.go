package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	conflict := &pq.Error{Code: "40001"}
	errScanRow := errors.New("storage: failed to scan row")
	errInternal := errors.New("usecase: internal error")

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "bare driver error",
			err:  conflict,
			want: true,
		},
		{
			name: "wrapped by repository",
			err:  fmt.Errorf("%w: FindOverlapping - execute query: %w", errScanRow, conflict),
			want: true,
		},
		{
			name: "wrapped by repository and usecase",
			err: fmt.Errorf("%w: overlap check failed: %w", errInternal,
				fmt.Errorf("%w: Create - execute insert: %w", errScanRow, conflict)),
			want: true,
		},
		{
			name: "commit-time failure",
			err:  fmt.Errorf("%w: %w", ErrTxCommit, conflict),
			want: true,
		},
		{
			name: "other sqlstate",
			err:  fmt.Errorf("%w: %w", errScanRow, &pq.Error{Code: "23505"}),
			want: false,
		},
		{
			name: "non-driver error",
			err:  errors.New("connection reset"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSerializationFailure(tt.err))
		})
	}
}
