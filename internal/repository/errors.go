// Package repository maps each entity's operations onto the stored
// procedures and functions that own the business rules. Rows come back
// schemaless (column name -> value) because the result shapes are defined
// by the database, not by this layer.
package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned by single-row reads that match no record.
// Handlers translate it into an HTTP 404.
var ErrNotFound = errors.New("registro no encontrado")

// ErrReservationWithoutClient is the one business failure this layer
// re-classifies: registrar_pago rejects reservations that have no client
// attached, and callers need a 404 rather than the generic 400.
var ErrReservationWithoutClient = errors.New("la reserva no tiene un cliente asociado")

// ProcedureError carries the raw message of an error raised inside a stored
// procedure. By the time it surfaces the transaction has been rolled back.
type ProcedureError struct {
	Message string
}

func (e *ProcedureError) Error() string { return e.Message }

// normalizeError wraps server-raised errors in ProcedureError and leaves
// infrastructure failures (broken connection, timeout) untouched.
func normalizeError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &ProcedureError{Message: pgErr.Message}
	}
	return err
}

// The procedures report business failures as free-text exceptions, so the
// missing payment/client association can only be recognized by its message.
// Every pattern this layer matches lives here.
var reservationWithoutClientPatterns = []string{
	"no tiene un cliente asociado",
	"sin cliente asociado",
}

// classifyPaymentError promotes the missing-association failure raised by
// registrar_pago to ErrReservationWithoutClient.
func classifyPaymentError(err error) error {
	var procErr *ProcedureError
	if !errors.As(err, &procErr) {
		return err
	}
	msg := strings.ToLower(procErr.Message)
	for _, pattern := range reservationWithoutClientPatterns {
		if strings.Contains(msg, pattern) {
			return ErrReservationWithoutClient
		}
	}
	return err
}
