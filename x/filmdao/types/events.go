package types

// film dao module event types
const (
	EventTypeProposalCreated      = "proposal_created"
	EventTypeVoteCast             = "vote_cast"
	EventTypeProposalTallied      = "proposal_tallied"
	EventTypeParameterUpdated     = "parameter_updated"
	EventTypeAuditorReplaced      = "auditor_replaced"
	EventTypeRewardAddressUpdated = "reward_address_updated"
	EventTypeProjectStatusChanged = "project_status_changed"
	EventTypeDepositRecorded      = "deposit_recorded"
	EventTypeFundingRefunded      = "funding_refunded"
	EventTypeFundingProcessed     = "funding_processed"
	EventTypeTierNftMinted        = "tier_nft_minted"
	EventTypeRevenueNftMinted     = "revenue_nft_minted"
	EventTypeRewardWithdraw       = "reward_withdraw"
	EventTypeRewardClaimed        = "reward_claimed"
	EventTypeRewardAdded          = "reward_added"
	EventTypeStaked               = "staked"
	EventTypeUnstaked             = "unstaked"
	EventTypeVotingDeposit        = "voting_deposit"
	EventTypeVotingWithdraw       = "voting_withdraw"
	EventTypeCollectionDeployed   = "collection_deployed"
	EventTypeAdminUpdate          = "admin_update"

	AttributeKeyKind       = "kind"
	AttributeKeyFlag       = "flag"
	AttributeKeyIndex      = "index"
	AttributeKeyProposalID = "proposal_id"
	AttributeKeyCreator    = "creator"
	AttributeKeyValue      = "value"
	AttributeKeyVoter      = "voter"
	AttributeKeyChoice     = "choice"
	AttributeKeyWeight     = "weight"
	AttributeKeyApproved   = "approved"
	AttributeKeyAuditor    = "auditor"
	AttributeKeyAddress    = "address"
	AttributeKeyFilmID     = "film_id"
	AttributeKeyOldStatus  = "old_status"
	AttributeKeyNewStatus  = "new_status"
	AttributeKeyDepositor  = "depositor"
	AttributeKeyDenom      = "denom"
	AttributeKeyAmount     = "amount"
	AttributeKeyNormalized = "normalized_amount"
	AttributeKeyCapReached = "cap_reached"
	AttributeKeyTier       = "tier"
	AttributeKeyTokenID    = "token_id"
	AttributeKeyOwner      = "owner"
	AttributeKeyCollection = "collection_id"
	AttributeKeyTo         = "to"
	AttributeKeyStaker     = "staker"
	AttributeKeyAction     = "action"
	AttributeValueCategory = ModuleName
)
