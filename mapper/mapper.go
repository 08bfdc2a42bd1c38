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

// Package mapper normalizes external agent records into the canonical
// representation. Mapping is a pure, total function: every record maps
// to some CanonicalAgent and mapping never fails, so a malformed record
// can never abort a sync batch. Unknown enum inputs collapse to the
// table defaults rather than raising errors.
package mapper

import (
	"strings"
	"time"

	"github.com/wso2/ai-agent-management-platform/agent-sync-service/models"
)

// agentTypeTable is the closed lookup from normalized source type
// strings to canonical agent types. Inputs outside the table map to
// defaultAgentType.
var agentTypeTable = map[string]models.AgentType{
	"patient-care":     models.AgentTypePatientCare,
	"patient care":     models.AgentTypePatientCare,
	"patientcare":      models.AgentTypePatientCare,
	"healthcare":       models.AgentTypePatientCare,
	"medical":          models.AgentTypePatientCare,
	"dental":           models.AgentTypePatientCare,
	"sales":            models.AgentTypeSales,
	"sales-rep":        models.AgentTypeSales,
	"aesthetic":        models.AgentTypeSales,
	"support":          models.AgentTypeSupport,
	"customer-service": models.AgentTypeSupport,
	"customer service": models.AgentTypeSupport,
	"service":          models.AgentTypeSupport,
	"specialist":       models.AgentTypeSpecialist,
	"expert":           models.AgentTypeSpecialist,
	"consultant":       models.AgentTypeSpecialist,
}

const defaultAgentType = models.AgentTypeSupport

// deploymentStatusTable is the closed lookup for declared deployment
// status strings. Inputs outside the table map to unknown.
var deploymentStatusTable = map[string]models.AgentDeploymentStatus{
	"active":      models.AgentDeploymentStatusActive,
	"deployed":    models.AgentDeploymentStatusActive,
	"online":      models.AgentDeploymentStatusActive,
	"running":     models.AgentDeploymentStatusActive,
	"idle":        models.AgentDeploymentStatusIdle,
	"inactive":    models.AgentDeploymentStatusIdle,
	"standby":     models.AgentDeploymentStatusIdle,
	"error":       models.AgentDeploymentStatusError,
	"failed":      models.AgentDeploymentStatusError,
	"maintenance": models.AgentDeploymentStatusMaintenance,
}

// Map converts an external agent record into a CanonicalAgent tagged
// with the given source. Field resolution walks an explicit ordered key
// chain per field so multiple upstream schema dialects converge on the
// same canonical shape.
func Map(record map[string]interface{}, source string) *models.CanonicalAgent {
	if record == nil {
		record = map[string]interface{}{}
	}

	agent := &models.CanonicalAgent{
		ExternalID:     stringField(record, "id", "_id", "agent_id", "agentId", "external_id", "externalId"),
		ExternalSource: source,
		Name:           stringField(record, "name", "agent_name", "agentName", "display_name", "displayName"),
		Description:    stringField(record, "description", "summary", "bio"),
		AgentType:      NormalizeAgentType(stringField(record, "type", "agent_type", "agentType", "role")),

		Config:            mergedConfig(record),
		Capabilities:      stringListField(record, "capabilities", "skills"),
		PersonalityTraits: stringListField(record, "personality_traits", "personalityTraits", "personality", "traits"),
		VoiceConfig:       mapField(record, "voice_config", "voiceConfig", "voice"),
		KnowledgeBase:     mapField(record, "knowledge_base", "knowledgeBase", "knowledge"),
		ProceduresAccess:  stringListField(record, "procedures_access", "proceduresAccess", "procedures"),

		DeploymentInfo: mapDeploymentInfo(record),
		IsActive:       boolField(record, true, "is_active", "isActive", "active"),

		ExternalCreatedAt: timeField(record, "created_at", "createdAt"),
		ExternalUpdatedAt: timeField(record, "updated_at", "updatedAt"),
	}

	return agent
}

// NormalizeAgentType normalizes a free-form source type string through
// the closed lookup table. Exported for administrative agent creation,
// which accepts the same dialect of type strings as the registry.
func NormalizeAgentType(raw string) models.AgentType {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if t, ok := agentTypeTable[normalized]; ok {
		return t
	}
	return defaultAgentType
}

// mapDeploymentStatus normalizes a declared deployment status string.
func mapDeploymentStatus(raw string) models.AgentDeploymentStatus {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if s, ok := deploymentStatusTable[normalized]; ok {
		return s
	}
	return models.AgentDeploymentStatusUnknown
}

// mergedConfig resolves the base config map and overlays
// source-specific overrides on top.
func mergedConfig(record map[string]interface{}) map[string]interface{} {
	base := mapField(record, "config", "configuration", "model_config", "modelConfig")
	overrides := mapField(record, "config_overrides", "configOverrides", "overrides")
	if len(overrides) == 0 {
		return base
	}
	merged := make(map[string]interface{}, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// mapDeploymentInfo assembles deployment bookkeeping from either a
// nested deployment_info object or legacy top-level fields.
func mapDeploymentInfo(record map[string]interface{}) models.DeploymentInfo {
	nested := mapField(record, "deployment_info", "deploymentInfo")

	deployedTo := stringListField(nested, "deployedTo", "deployed_to")
	if len(deployedTo) == 0 {
		deployedTo = stringListField(record, "deployed_to", "deployedTo", "platforms")
	}

	status := stringField(nested, "deploymentStatus", "deployment_status", "status")
	if status == "" {
		status = stringField(record, "deployment_status", "deploymentStatus")
	}

	lastDeployed := timeField(nested, "lastDeployed", "last_deployed")
	if lastDeployed == nil {
		lastDeployed = timeField(record, "last_deployed", "lastDeployed")
	}

	if deployedTo == nil {
		deployedTo = []string{}
	}
	return models.DeploymentInfo{
		DeployedTo:       deployedTo,
		DeploymentStatus: mapDeploymentStatus(status),
		LastDeployed:     lastDeployed,
	}
}

// stringField evaluates keys in order and returns the first non-empty
// string value.
func stringField(record map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := record[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// boolField evaluates keys in order and returns the first bool value,
// falling back to the given default.
func boolField(record map[string]interface{}, defaultValue bool, keys ...string) bool {
	for _, key := range keys {
		if value, ok := record[key].(bool); ok {
			return value
		}
	}
	return defaultValue
}

// mapField evaluates keys in order and returns the first non-empty
// object value.
func mapField(record map[string]interface{}, keys ...string) map[string]interface{} {
	for _, key := range keys {
		if value, ok := record[key].(map[string]interface{}); ok && len(value) > 0 {
			return value
		}
	}
	return map[string]interface{}{}
}

// stringListField evaluates keys in order and returns the first
// non-empty list value, preserving element order and skipping
// non-string elements.
func stringListField(record map[string]interface{}, keys ...string) []string {
	for _, key := range keys {
		raw, ok := record[key].([]interface{})
		if !ok {
			// Already-typed lists occur when records come from local
			// construction rather than JSON decoding.
			if typed, ok := record[key].([]string); ok && len(typed) > 0 {
				return typed
			}
			continue
		}
		if len(raw) == 0 {
			continue
		}
		list := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
		if len(list) > 0 {
			return list
		}
	}
	return nil
}

// timeLayouts are the accepted source timestamp formats.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// timeField evaluates keys in order and returns the first parseable
// timestamp. Unparseable values are dropped, not errored.
func timeField(record map[string]interface{}, keys ...string) *time.Time {
	for _, key := range keys {
		switch value := record[key].(type) {
		case string:
			for _, layout := range timeLayouts {
				if parsed, err := time.Parse(layout, value); err == nil {
					return &parsed
				}
			}
		case time.Time:
			return &value
		}
	}
	return nil
}
