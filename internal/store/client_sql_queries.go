// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// local_registration holds at most one row (id = 1): the test paired with
// this device.
const (
	saveLocalRegistration = `
		INSERT INTO local_registration (
			id,
			registration_token,
			registered_at,
			result_seen,
			last_state,
			result_received_at
		) VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			registration_token = excluded.registration_token,
			registered_at = excluded.registered_at,
			result_seen = excluded.result_seen,
			last_state = excluded.last_state,
			result_received_at = excluded.result_received_at;`

	getLocalRegistration = `
		SELECT
			registration_token,
			registered_at,
			result_seen,
			last_state,
			result_received_at
		FROM local_registration
		WHERE id = 1;`

	deleteLocalRegistration = `DELETE FROM local_registration WHERE id = 1;`

	markLocalResultSeen = `UPDATE local_registration SET result_seen = 1 WHERE id = 1;`

	saveLocalLastState = `
		UPDATE local_registration
		SET last_state = ?, result_received_at = ?
		WHERE id = 1;`
)
