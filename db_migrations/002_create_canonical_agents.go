// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package dbmigrations

import (
	"gorm.io/gorm"
)

// create table canonical_agents
var migration002 = migration{
	ID: 2,
	Migrate: func(db *gorm.DB) error {
		createTable := `CREATE TABLE canonical_agents
(
   id                   UUID PRIMARY KEY DEFAULT gen_random_uuid(),
   external_id          VARCHAR(255),
   external_source      VARCHAR(100),
   name                 VARCHAR(255) NOT NULL,
   description          TEXT,
   agent_type           VARCHAR(50) NOT NULL,
   config               JSONB,
   capabilities         JSONB,
   personality_traits   JSONB,
   voice_config         JSONB,
   knowledge_base       JSONB,
   procedures_access    JSONB,
   deployment_info      JSONB,
   is_active            BOOLEAN NOT NULL DEFAULT TRUE,
   external_created_at  TIMESTAMPTZ,
   external_updated_at  TIMESTAMPTZ,
   last_synced_at       TIMESTAMPTZ,
   created_at           TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   updated_at           TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   CONSTRAINT agent_type_enum CHECK (agent_type IN ('patient-care', 'sales', 'support', 'specialist'))
)`

		// Upsert identity for synced agents. Partial so locally
		// administered agents are exempt: those rows carry empty
		// strings for both columns, not NULLs.
		createIndex := `CREATE UNIQUE INDEX uk_canonical_agents_external_identity
   ON canonical_agents(external_id, external_source)
   WHERE external_id <> '' AND external_source <> ''`

		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createTable, createIndex)
		})
	},
}
