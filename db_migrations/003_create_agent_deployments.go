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

// create table agent_deployments
//
// Append-only deployment history. Rows are never deleted; undeploy
// flips status to inactive. Redeploying an agent to the same platform
// inserts a fresh row, so there is no uniqueness constraint on
// (agent_id, platform_id).
var migration003 = migration{
	ID: 3,
	Migrate: func(db *gorm.DB) error {
		createTable := `CREATE TABLE agent_deployments
(
   id                 UUID PRIMARY KEY DEFAULT gen_random_uuid(),
   agent_id           UUID NOT NULL REFERENCES canonical_agents(id),
   platform_id        UUID NOT NULL REFERENCES platforms(id),
   deployment_url     TEXT,
   status             VARCHAR(20) NOT NULL,
   deployed_at        TIMESTAMPTZ NOT NULL,
   undeployed_at      TIMESTAMPTZ,
   deployment_config  JSONB,
   created_at         TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   updated_at         TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
   CONSTRAINT deployment_status_enum CHECK (status IN ('active', 'inactive'))
)`

		createAgentIndex := `CREATE INDEX idx_agent_deployments_agent ON agent_deployments(agent_id)`
		createSlotIndex := `CREATE INDEX idx_agent_deployments_slot ON agent_deployments(agent_id, platform_id, status)`

		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createTable, createAgentIndex, createSlotIndex)
		})
	},
}
