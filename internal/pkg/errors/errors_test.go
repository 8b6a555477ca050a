package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coverage-planner/internal/pkg/errors"
)

func TestAppError_WithDetailsKeepsSentinel(t *testing.T) {
	detailed := errors.ErrInvalidDimension.WithDetails(map[string]interface{}{"field": "length_m"})

	assert.Equal(t, "length_m", detailed.Details["field"])
	assert.Empty(t, errors.ErrInvalidDimension.Details)
	assert.Equal(t, errors.ErrInvalidDimension.StatusCode, detailed.StatusCode)
}

func TestAppError_IsMatchesByCode(t *testing.T) {
	wrapped := fmt.Errorf("plan: %w", errors.ErrInfeasibleLinkBudget.WithMessage("radius is zero"))

	assert.True(t, stderrors.Is(wrapped, errors.ErrInfeasibleLinkBudget))
	assert.False(t, stderrors.Is(wrapped, errors.ErrInvalidDimension))
	assert.Equal(t, "INFEASIBLE_LINK_BUDGET: radius is zero", stderrors.Unwrap(wrapped).Error())
}
