// Package errors provides the structured error type used across rpg-sim.
//
// Every storage-facing call reports one of three distinct failure kinds so
// callers can tell them apart instead of receiving a bare nil:
//   - NOT_FOUND: the record or asset does not exist
//   - MALFORMED: the record exists but could not be decoded
//   - IO: the backing store could not be read or written
//
// Gameplay rules use their own codes:
//   - FAILED_PRECONDITION: a skill is still on cooldown, a stack is too small
//   - RESOURCE_EXHAUSTED: not enough stamina
//   - INVALID_ARGUMENT: missing IDs, bad input
//
// # Basic Usage
//
//	err := errors.NotFoundf("player %d not found", id).WithMeta("player_id", id)
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save player")
//	}
//
//	if errors.IsNotFound(err) {
//	    // skip this tick
//	}
//
// Wrap keeps the code of an existing *Error; plain errors become INTERNAL.
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Repository == nil {
//	    vb.RequiredField("Repository")
//	}
//	return vb.Build()
package errors
