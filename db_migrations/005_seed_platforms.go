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

// seed default platforms
//
// Base URLs are intentionally left empty: operators set them per
// deployment. Reconciliation reports platforms without a base URL as
// not_configured rather than probing them.
var migration005 = migration{
	ID: 5,
	Migrate: func(db *gorm.DB) error {
		seed := `INSERT INTO platforms (name, display_name, max_agents)
VALUES
   ('pedro',       'Pedro',       5),
   ('repconnect1', 'RepConnect',  NULL),
   ('repspheres',  'RepSpheres',  NULL)
ON CONFLICT DO NOTHING`

		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, seed)
		})
	},
}
