package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cwa-home/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildCreateRegistration(r models.Registration) (string, []any, error) {
	return psql.Insert("registrations").
		Columns("registration_id", "hashed_guid").
		Values(r.RegistrationID, r.HashedGUID).
		Suffix("RETURNING created_at, redeemed").
		ToSql()
}

func buildGetRegistration(registrationID string) (string, []any, error) {
	return psql.Select(
		"r.registration_id",
		"r.hashed_guid",
		"r.created_at",
		"r.redeemed",
		"COALESCE(l.device_state, '"+string(models.PairedNoResult)+"')",
		"l.received_at",
	).
		From("registrations r").
		LeftJoin("lab_results l ON l.hashed_guid = r.hashed_guid").
		Where(sq.Eq{"r.registration_id": registrationID}).
		ToSql()
}

func buildMarkRedeemed(registrationID string) (string, []any, error) {
	return psql.Update("registrations").
		Set("redeemed", true).
		Where(sq.Eq{"registration_id": registrationID}).
		ToSql()
}

func buildSaveLabResult(hashedGUID string, state models.DeviceState) (string, []any, error) {
	return psql.Insert("lab_results").
		Columns("hashed_guid", "device_state").
		Values(hashedGUID, string(state)).
		Suffix("ON CONFLICT (hashed_guid) DO UPDATE SET device_state = EXCLUDED.device_state, received_at = NOW()").
		ToSql()
}
