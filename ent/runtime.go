// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/roundtable-ai/roundtable/ent/debate"
	"github.com/roundtable-ai/roundtable/ent/debateround"
	"github.com/roundtable-ai/roundtable/ent/debatesynthesis"
	"github.com/roundtable-ai/roundtable/ent/personalityresponse"
	"github.com/roundtable-ai/roundtable/ent/schema"
	"github.com/roundtable-ai/roundtable/ent/usagerecord"
	"github.com/shopspring/decimal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	debateFields := schema.Debate{}.Fields()
	_ = debateFields
	// debateDescCurrentRound is the schema descriptor for current_round field.
	debateDescCurrentRound := debateFields[7].Descriptor()
	// debate.DefaultCurrentRound holds the default value on creation for the current_round field.
	debate.DefaultCurrentRound = debateDescCurrentRound.Default.(int)
	// debateDescTotalInputTokens is the schema descriptor for total_input_tokens field.
	debateDescTotalInputTokens := debateFields[8].Descriptor()
	// debate.DefaultTotalInputTokens holds the default value on creation for the total_input_tokens field.
	debate.DefaultTotalInputTokens = debateDescTotalInputTokens.Default.(int64)
	// debateDescTotalOutputTokens is the schema descriptor for total_output_tokens field.
	debateDescTotalOutputTokens := debateFields[9].Descriptor()
	// debate.DefaultTotalOutputTokens holds the default value on creation for the total_output_tokens field.
	debate.DefaultTotalOutputTokens = debateDescTotalOutputTokens.Default.(int64)
	// debateDescTotalCost is the schema descriptor for total_cost field.
	debateDescTotalCost := debateFields[10].Descriptor()
	// debate.DefaultTotalCost holds the default value on creation for the total_cost field.
	debate.DefaultTotalCost = debateDescTotalCost.Default.(func() decimal.Decimal)
	// debateDescCreatedAt is the schema descriptor for created_at field.
	debateDescCreatedAt := debateFields[11].Descriptor()
	// debate.DefaultCreatedAt holds the default value on creation for the created_at field.
	debate.DefaultCreatedAt = debateDescCreatedAt.Default.(func() time.Time)
	// debateDescUpdatedAt is the schema descriptor for updated_at field.
	debateDescUpdatedAt := debateFields[12].Descriptor()
	// debate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	debate.DefaultUpdatedAt = debateDescUpdatedAt.Default.(func() time.Time)
	// debate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	debate.UpdateDefaultUpdatedAt = debateDescUpdatedAt.UpdateDefault.(func() time.Time)
	debateroundFields := schema.DebateRound{}.Fields()
	_ = debateroundFields
	// debateroundDescCreatedAt is the schema descriptor for created_at field.
	debateroundDescCreatedAt := debateroundFields[3].Descriptor()
	// debateround.DefaultCreatedAt holds the default value on creation for the created_at field.
	debateround.DefaultCreatedAt = debateroundDescCreatedAt.Default.(func() time.Time)
	debatesynthesisFields := schema.DebateSynthesis{}.Fields()
	_ = debatesynthesisFields
	// debatesynthesisDescInputTokens is the schema descriptor for input_tokens field.
	debatesynthesisDescInputTokens := debatesynthesisFields[3].Descriptor()
	// debatesynthesis.DefaultInputTokens holds the default value on creation for the input_tokens field.
	debatesynthesis.DefaultInputTokens = debatesynthesisDescInputTokens.Default.(int64)
	// debatesynthesisDescOutputTokens is the schema descriptor for output_tokens field.
	debatesynthesisDescOutputTokens := debatesynthesisFields[4].Descriptor()
	// debatesynthesis.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	debatesynthesis.DefaultOutputTokens = debatesynthesisDescOutputTokens.Default.(int64)
	// debatesynthesisDescCost is the schema descriptor for cost field.
	debatesynthesisDescCost := debatesynthesisFields[5].Descriptor()
	// debatesynthesis.DefaultCost holds the default value on creation for the cost field.
	debatesynthesis.DefaultCost = debatesynthesisDescCost.Default.(func() decimal.Decimal)
	// debatesynthesisDescCreatedAt is the schema descriptor for created_at field.
	debatesynthesisDescCreatedAt := debatesynthesisFields[6].Descriptor()
	// debatesynthesis.DefaultCreatedAt holds the default value on creation for the created_at field.
	debatesynthesis.DefaultCreatedAt = debatesynthesisDescCreatedAt.Default.(func() time.Time)
	personalityresponseFields := schema.PersonalityResponse{}.Fields()
	_ = personalityresponseFields
	// personalityresponseDescInputTokens is the schema descriptor for input_tokens field.
	personalityresponseDescInputTokens := personalityresponseFields[6].Descriptor()
	// personalityresponse.DefaultInputTokens holds the default value on creation for the input_tokens field.
	personalityresponse.DefaultInputTokens = personalityresponseDescInputTokens.Default.(int64)
	// personalityresponseDescOutputTokens is the schema descriptor for output_tokens field.
	personalityresponseDescOutputTokens := personalityresponseFields[7].Descriptor()
	// personalityresponse.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	personalityresponse.DefaultOutputTokens = personalityresponseDescOutputTokens.Default.(int64)
	// personalityresponseDescCost is the schema descriptor for cost field.
	personalityresponseDescCost := personalityresponseFields[8].Descriptor()
	// personalityresponse.DefaultCost holds the default value on creation for the cost field.
	personalityresponse.DefaultCost = personalityresponseDescCost.Default.(func() decimal.Decimal)
	// personalityresponseDescCreatedAt is the schema descriptor for created_at field.
	personalityresponseDescCreatedAt := personalityresponseFields[9].Descriptor()
	// personalityresponse.DefaultCreatedAt holds the default value on creation for the created_at field.
	personalityresponse.DefaultCreatedAt = personalityresponseDescCreatedAt.Default.(func() time.Time)
	usagerecordFields := schema.UsageRecord{}.Fields()
	_ = usagerecordFields
	// usagerecordDescCachedTokens is the schema descriptor for cached_tokens field.
	usagerecordDescCachedTokens := usagerecordFields[7].Descriptor()
	// usagerecord.DefaultCachedTokens holds the default value on creation for the cached_tokens field.
	usagerecord.DefaultCachedTokens = usagerecordDescCachedTokens.Default.(int64)
	// usagerecordDescEstimated is the schema descriptor for estimated field.
	usagerecordDescEstimated := usagerecordFields[13].Descriptor()
	// usagerecord.DefaultEstimated holds the default value on creation for the estimated field.
	usagerecord.DefaultEstimated = usagerecordDescEstimated.Default.(bool)
	// usagerecordDescCreatedAt is the schema descriptor for created_at field.
	usagerecordDescCreatedAt := usagerecordFields[14].Descriptor()
	// usagerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	usagerecord.DefaultCreatedAt = usagerecordDescCreatedAt.Default.(func() time.Time)
}
