// Package controller implements the core business logic (service layer)
// for companies, employees and assets, orchestrating repository
// operations, enforcing uniqueness and association invariants, and
// sending relevant events.
package controller

import (
	"fmt"
	"net/mail"
	"regexp"

	e "github.com/fortetech/assethub/internal/assethub/errors"
	"github.com/fortetech/assethub/internal/assethub/events"
	"github.com/google/uuid"
)

// EventProducer publishes a domain event keyed by the entity id.
type EventProducer interface {
	Produce(eventType events.EventType, entityID uuid.UUID, entity interface{})
}

var (
	taxIDPattern      = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	nationalIDPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
)

func validateName(name string) error {
	if len(name) < 2 || len(name) > 100 {
		return fmt.Errorf("%w: name must be between 2 and 100 characters", e.ErrInvalidInput)
	}
	return nil
}

func validateTaxID(taxID string) error {
	if !taxIDPattern.MatchString(taxID) {
		return fmt.Errorf("%w: tax id must match NN.NNN.NNN/NNNN-NN", e.ErrInvalidInput)
	}
	return nil
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email address", e.ErrInvalidInput)
	}
	return nil
}

func validateNationalID(nationalID string) error {
	if !nationalIDPattern.MatchString(nationalID) {
		return fmt.Errorf("%w: national id must match NNN.NNN.NNN-NN", e.ErrInvalidInput)
	}
	return nil
}
