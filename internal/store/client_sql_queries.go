// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// The session table holds at most one row, id = 1. Every statement touches
// all session fields at once so a crash never leaves a partial session.
const (
	loadSession = `
		SELECT active, identity, working_data, token, updated_at
		FROM session
		WHERE id = 1;`

	saveSession = `
		INSERT INTO session (id, active, identity, working_data, token, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			active = excluded.active,
			identity = excluded.identity,
			working_data = excluded.working_data,
			token = excluded.token,
			updated_at = excluded.updated_at;`

	updateSessionWorkingData = `
		UPDATE session
		SET working_data = ?, updated_at = ?
		WHERE id = 1 AND active = 1;`

	updateSessionToken = `
		UPDATE session
		SET token = ?, updated_at = ?
		WHERE id = 1 AND active = 1;`

	clearSession = `DELETE FROM session WHERE id = 1;`
)
