package providers

import (
	"fmt"
	"watd/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid configuration: %s", v.Errors.One())
	}
	if cv.conf.Tracker.FlushInterval <= 0 {
		return fmt.Errorf("invalid configuration: tracker.flushInterval must be positive")
	}
	if cv.conf.Tracker.RolloverCheckInterval <= 0 {
		return fmt.Errorf("invalid configuration: tracker.rolloverCheckInterval must be positive")
	}
	return nil
}
