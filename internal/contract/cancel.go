package contract

import (
	"context"
	"fmt"

	"github.com/eigerco/tribunal/internal/trial"
)

func cancel(_ context.Context, deps Deps, env Env, info MessageInfo, msg CancelMsg) (Response, error) {
	t, err := loadTrial(deps.Store, env)
	if err != nil {
		return Response{}, err
	}
	if info.Sender != t.Owner || !t.CanBeCanceled() {
		return Response{}, fmt.Errorf("%w: cannot cancel a %s trial as %s", ErrNotAuthorized, t.Status, info.Sender)
	}

	t.Status = trial.Dismissed
	if err := deps.Store.SaveTrial(t); err != nil {
		return Response{}, err
	}
	if msg.Reason != "" {
		if err := deps.Store.SaveCancelReason(msg.Reason); err != nil {
			return Response{}, err
		}
	}
	return NewResponse("cancel"), nil
}
