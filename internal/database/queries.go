/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

const (
	queryInsertResult = `
		INSERT INTO game_results (id, bucket, name, elapsed_ms, created_at)
		VALUES (?, ?, ?, ?, ?)`

	queryListResults = `
		SELECT id, name, elapsed_ms, created_at
		FROM game_results
		WHERE bucket = ?
		ORDER BY elapsed_ms, created_at
		LIMIT ?`

	queryCountResults = `
		SELECT COUNT(*) FROM game_results WHERE bucket = ?`
)
