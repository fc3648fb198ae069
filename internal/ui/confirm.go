package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// askOne allows mocking in tests.
var askOne = survey.AskOne

// ConfirmWrite asks whether the table may be written into document.
func ConfirmWrite(document string) (bool, error) {
	ok := false
	err := askOne(&survey.Confirm{
		Message: fmt.Sprintf("Write this table into %s?", document),
		Default: false,
	}, &ok)
	if err != nil {
		return false, err
	}
	return ok, nil
}
