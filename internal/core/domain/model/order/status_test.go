package order_test

import (
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Apply(t *testing.T) {
	t.Run("happy path sequence", func(t *testing.T) {
		steps := []struct {
			action   order.Action
			expected order.Status
		}{
			{order.ActionApprovePayment, order.PaymentApproved},
			{order.ActionStartProduction, order.InProduction},
			{order.ActionMarkReady, order.Ready},
			{order.ActionComplete, order.Completed},
		}

		status := order.Pending
		for _, step := range steps {
			next, err := status.Apply(step.action)

			require.NoError(t, err)
			assert.Equal(t, step.expected, next)
			status = next
		}
	})

	t.Run("reachability matrix", func(t *testing.T) {
		allowed := map[order.Status][]order.Action{
			order.Pending:         {order.ActionAddItem, order.ActionRemoveItem, order.ActionApprovePayment, order.ActionCancel},
			order.PaymentApproved: {order.ActionStartProduction, order.ActionCancel},
			order.InProduction:    {order.ActionMarkReady, order.ActionCancel},
			order.Ready:           {order.ActionComplete, order.ActionCancel},
			order.Completed:       {},
			order.Cancelled:       {order.ActionCancel},
		}
		actions := []order.Action{
			order.ActionAddItem,
			order.ActionRemoveItem,
			order.ActionApprovePayment,
			order.ActionStartProduction,
			order.ActionMarkReady,
			order.ActionComplete,
			order.ActionCancel,
		}

		for status, allowedActions := range allowed {
			for _, action := range actions {
				_, err := status.Apply(action)

				isAllowed := false
				for _, a := range allowedActions {
					if a == action {
						isAllowed = true
					}
				}

				if isAllowed {
					require.NoError(t, err, "%s from %s should succeed", action, status)
				} else {
					require.Error(t, err, "%s from %s should fail", action, status)
					require.ErrorIs(t, err, errs.ErrInvalidTransition)
				}
			}
		}
	})

	t.Run("cancel from completed always fails", func(t *testing.T) {
		_, err := order.Completed.Apply(order.ActionCancel)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "cannot cancel order in Completed status")
	})

	t.Run("error carries from-status and action", func(t *testing.T) {
		_, err := order.Ready.Apply(order.ActionStartProduction)

		require.Error(t, err)
		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "Ready", transitionErr.FromStatus)
		assert.Equal(t, "startProduction", transitionErr.Action)
	})

	t.Run("unknown status rejects everything", func(t *testing.T) {
		var status order.Status

		_, err := status.Apply(order.ActionApprovePayment)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.PaymentApproved, order.InProduction,
			order.Ready, order.Completed, order.Cancelled,
		} {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("unknown and out-of-range fail", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "PaymentApproved", order.PaymentApproved.String())
	assert.Equal(t, "InProduction", order.InProduction.String())
	assert.Equal(t, "Ready", order.Ready.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses case-insensitively", func(t *testing.T) {
		status, err := order.StatusFromString("paymentapproved")

		require.NoError(t, err)
		assert.Equal(t, order.PaymentApproved, status)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
