// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/punchd-io/punchd/ent/agentsession"
	"github.com/punchd-io/punchd/ent/childrelation"
	"github.com/punchd-io/punchd/ent/punch"
	"github.com/punchd-io/punchd/ent/punchcardrequirement"
	"github.com/punchd-io/punchd/ent/schema"
	"github.com/punchd-io/punchd/ent/sessionmessage"
	"github.com/punchd-io/punchd/ent/toolcall"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentsessionFields := schema.AgentSession{}.Fields()
	_ = agentsessionFields
	// agentsessionDescTotalCost is the schema descriptor for total_cost field.
	agentsessionDescTotalCost := agentsessionFields[5].Descriptor()
	// agentsession.DefaultTotalCost holds the default value on creation for the total_cost field.
	agentsession.DefaultTotalCost = agentsessionDescTotalCost.Default.(float64)
	// agentsessionDescTokensIn is the schema descriptor for tokens_in field.
	agentsessionDescTokensIn := agentsessionFields[6].Descriptor()
	// agentsession.DefaultTokensIn holds the default value on creation for the tokens_in field.
	agentsession.DefaultTokensIn = agentsessionDescTokensIn.Default.(int64)
	// agentsessionDescTokensOut is the schema descriptor for tokens_out field.
	agentsessionDescTokensOut := agentsessionFields[7].Descriptor()
	// agentsession.DefaultTokensOut holds the default value on creation for the tokens_out field.
	agentsession.DefaultTokensOut = agentsessionDescTokensOut.Default.(int64)
	// agentsessionDescTokensReasoning is the schema descriptor for tokens_reasoning field.
	agentsessionDescTokensReasoning := agentsessionFields[8].Descriptor()
	// agentsession.DefaultTokensReasoning holds the default value on creation for the tokens_reasoning field.
	agentsession.DefaultTokensReasoning = agentsessionDescTokensReasoning.Default.(int64)
	// agentsessionDescStartedAt is the schema descriptor for started_at field.
	agentsessionDescStartedAt := agentsessionFields[9].Descriptor()
	// agentsession.DefaultStartedAt holds the default value on creation for the started_at field.
	agentsession.DefaultStartedAt = agentsessionDescStartedAt.Default.(func() time.Time)
	childrelationFields := schema.ChildRelation{}.Fields()
	_ = childrelationFields
	// childrelationDescCreatedAt is the schema descriptor for created_at field.
	childrelationDescCreatedAt := childrelationFields[3].Descriptor()
	// childrelation.DefaultCreatedAt holds the default value on creation for the created_at field.
	childrelation.DefaultCreatedAt = childrelationDescCreatedAt.Default.(func() time.Time)
	punchFields := schema.Punch{}.Fields()
	_ = punchFields
	// punchDescObservedAt is the schema descriptor for observed_at field.
	punchDescObservedAt := punchFields[4].Descriptor()
	// punch.DefaultObservedAt holds the default value on creation for the observed_at field.
	punch.DefaultObservedAt = punchDescObservedAt.Default.(func() time.Time)
	// punchDescSourceHash is the schema descriptor for source_hash field.
	punchDescSourceHash := punchFields[5].Descriptor()
	// punch.SourceHashValidator is a validator for the "source_hash" field. It is called by the builders before save.
	punch.SourceHashValidator = punchDescSourceHash.Validators[0].(func(string) error)
	// punchDescContentHash is the schema descriptor for content_hash field.
	punchDescContentHash := punchFields[6].Descriptor()
	// punch.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	punch.ContentHashValidator = punchDescContentHash.Validators[0].(func(string) error)
	punchcardrequirementFields := schema.PunchCardRequirement{}.Fields()
	_ = punchcardrequirementFields
	// punchcardrequirementDescRequired is the schema descriptor for required field.
	punchcardrequirementDescRequired := punchcardrequirementFields[4].Descriptor()
	// punchcardrequirement.DefaultRequired holds the default value on creation for the required field.
	punchcardrequirement.DefaultRequired = punchcardrequirementDescRequired.Default.(bool)
	// punchcardrequirementDescForbidden is the schema descriptor for forbidden field.
	punchcardrequirementDescForbidden := punchcardrequirementFields[5].Descriptor()
	// punchcardrequirement.DefaultForbidden holds the default value on creation for the forbidden field.
	punchcardrequirement.DefaultForbidden = punchcardrequirementDescForbidden.Default.(bool)
	sessionmessageFields := schema.SessionMessage{}.Fields()
	_ = sessionmessageFields
	// sessionmessageDescTs is the schema descriptor for ts field.
	sessionmessageDescTs := sessionmessageFields[5].Descriptor()
	// sessionmessage.DefaultTs holds the default value on creation for the ts field.
	sessionmessage.DefaultTs = sessionmessageDescTs.Default.(func() time.Time)
	toolcallFields := schema.ToolCall{}.Fields()
	_ = toolcallFields
	// toolcallDescTs is the schema descriptor for ts field.
	toolcallDescTs := toolcallFields[8].Descriptor()
	// toolcall.DefaultTs holds the default value on creation for the ts field.
	toolcall.DefaultTs = toolcallDescTs.Default.(func() time.Time)
}
