package service

import (
	"fmt"

	"github.com/lordvidex/errs"
)

// ErrWrongCredentials is returned for unknown usernames and wrong
// passwords alike, so the API never reveals which accounts exist.
var ErrWrongCredentials = errs.B().Code(errs.Unauthenticated).Msg("wrong credentials").Err()

func errEmptyField(field string) error {
	return errs.B().Code(errs.InvalidArgument).Msg(fmt.Sprintf("the field %s cannot be empty", field)).Err()
}

func errInvalidValue(field string) error {
	return errs.B().Code(errs.InvalidArgument).Msg(fmt.Sprintf("the field %s has an invalid value", field)).Err()
}

func errUsernameInUse(username string) error {
	return errs.B().Code(errs.InvalidArgument).Msg(fmt.Sprintf("the username %s is already in use", username)).Err()
}

func errIDNotFound(id int, entity string) error {
	return errs.B().Code(errs.NotFound).Msg(fmt.Sprintf("the %s with id %d does not exist", entity, id)).Err()
}
