// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"expensedesk.io/approvalflow/ent/approval"
	"expensedesk.io/approvalflow/ent/approvalrule"
	"expensedesk.io/approvalflow/ent/auditlog"
	"expensedesk.io/approvalflow/ent/company"
	"expensedesk.io/approvalflow/ent/expense"
	"expensedesk.io/approvalflow/ent/notification"
	"expensedesk.io/approvalflow/ent/ruleapprover"
	"expensedesk.io/approvalflow/ent/rulecondition"
	"expensedesk.io/approvalflow/ent/schema"
	"expensedesk.io/approvalflow/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvalMixin := schema.Approval{}.Mixin()
	approvalMixinFields0 := approvalMixin[0].Fields()
	_ = approvalMixinFields0
	approvalFields := schema.Approval{}.Fields()
	_ = approvalFields
	// approvalDescCreatedAt is the schema descriptor for created_at field.
	approvalDescCreatedAt := approvalMixinFields0[0].Descriptor()
	// approval.DefaultCreatedAt holds the default value on creation for the created_at field.
	approval.DefaultCreatedAt = approvalDescCreatedAt.Default.(func() time.Time)
	// approvalDescUpdatedAt is the schema descriptor for updated_at field.
	approvalDescUpdatedAt := approvalMixinFields0[1].Descriptor()
	// approval.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	approval.DefaultUpdatedAt = approvalDescUpdatedAt.Default.(func() time.Time)
	// approval.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	approval.UpdateDefaultUpdatedAt = approvalDescUpdatedAt.UpdateDefault.(func() time.Time)
	// approvalDescExpenseID is the schema descriptor for expense_id field.
	approvalDescExpenseID := approvalFields[1].Descriptor()
	// approval.ExpenseIDValidator is a validator for the "expense_id" field. It is called by the builders before save.
	approval.ExpenseIDValidator = approvalDescExpenseID.Validators[0].(func(string) error)
	// approvalDescApproverID is the schema descriptor for approver_id field.
	approvalDescApproverID := approvalFields[2].Descriptor()
	// approval.ApproverIDValidator is a validator for the "approver_id" field. It is called by the builders before save.
	approval.ApproverIDValidator = approvalDescApproverID.Validators[0].(func(string) error)
	// approvalDescChainKey is the schema descriptor for chain_key field.
	approvalDescChainKey := approvalFields[4].Descriptor()
	// approval.ChainKeyValidator is a validator for the "chain_key" field. It is called by the builders before save.
	approval.ChainKeyValidator = approvalDescChainKey.Validators[0].(func(string) error)
	// approvalDescIsSequential is the schema descriptor for is_sequential field.
	approvalDescIsSequential := approvalFields[7].Descriptor()
	// approval.DefaultIsSequential holds the default value on creation for the is_sequential field.
	approval.DefaultIsSequential = approvalDescIsSequential.Default.(bool)
	// approvalDescIsRequired is the schema descriptor for is_required field.
	approvalDescIsRequired := approvalFields[8].Descriptor()
	// approval.DefaultIsRequired holds the default value on creation for the is_required field.
	approval.DefaultIsRequired = approvalDescIsRequired.Default.(bool)
	// approvalDescRuleTotalApprovers is the schema descriptor for rule_total_approvers field.
	approvalDescRuleTotalApprovers := approvalFields[9].Descriptor()
	// approval.RuleTotalApproversValidator is a validator for the "rule_total_approvers" field. It is called by the builders before save.
	approval.RuleTotalApproversValidator = approvalDescRuleTotalApprovers.Validators[0].(func(int) error)
	// approvalDescRuleMinPercentage is the schema descriptor for rule_min_percentage field.
	approvalDescRuleMinPercentage := approvalFields[10].Descriptor()
	// approval.RuleMinPercentageValidator is a validator for the "rule_min_percentage" field. It is called by the builders before save.
	approval.RuleMinPercentageValidator = func() func(int) error {
		validators := approvalDescRuleMinPercentage.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rule_min_percentage int) error {
			for _, fn := range fns {
				if err := fn(rule_min_percentage); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	approvalruleMixin := schema.ApprovalRule{}.Mixin()
	approvalruleMixinFields0 := approvalruleMixin[0].Fields()
	_ = approvalruleMixinFields0
	approvalruleFields := schema.ApprovalRule{}.Fields()
	_ = approvalruleFields
	// approvalruleDescCreatedAt is the schema descriptor for created_at field.
	approvalruleDescCreatedAt := approvalruleMixinFields0[0].Descriptor()
	// approvalrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	approvalrule.DefaultCreatedAt = approvalruleDescCreatedAt.Default.(func() time.Time)
	// approvalruleDescUpdatedAt is the schema descriptor for updated_at field.
	approvalruleDescUpdatedAt := approvalruleMixinFields0[1].Descriptor()
	// approvalrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	approvalrule.DefaultUpdatedAt = approvalruleDescUpdatedAt.Default.(func() time.Time)
	// approvalrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	approvalrule.UpdateDefaultUpdatedAt = approvalruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// approvalruleDescCompanyID is the schema descriptor for company_id field.
	approvalruleDescCompanyID := approvalruleFields[1].Descriptor()
	// approvalrule.CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	approvalrule.CompanyIDValidator = approvalruleDescCompanyID.Validators[0].(func(string) error)
	// approvalruleDescName is the schema descriptor for name field.
	approvalruleDescName := approvalruleFields[2].Descriptor()
	// approvalrule.NameValidator is a validator for the "name" field. It is called by the builders before save.
	approvalrule.NameValidator = approvalruleDescName.Validators[0].(func(string) error)
	// approvalruleDescPriority is the schema descriptor for priority field.
	approvalruleDescPriority := approvalruleFields[4].Descriptor()
	// approvalrule.DefaultPriority holds the default value on creation for the priority field.
	approvalrule.DefaultPriority = approvalruleDescPriority.Default.(int)
	// approvalruleDescIsManagerApprovalRequired is the schema descriptor for is_manager_approval_required field.
	approvalruleDescIsManagerApprovalRequired := approvalruleFields[5].Descriptor()
	// approvalrule.DefaultIsManagerApprovalRequired holds the default value on creation for the is_manager_approval_required field.
	approvalrule.DefaultIsManagerApprovalRequired = approvalruleDescIsManagerApprovalRequired.Default.(bool)
	// approvalruleDescIsSequenceRequired is the schema descriptor for is_sequence_required field.
	approvalruleDescIsSequenceRequired := approvalruleFields[6].Descriptor()
	// approvalrule.DefaultIsSequenceRequired holds the default value on creation for the is_sequence_required field.
	approvalrule.DefaultIsSequenceRequired = approvalruleDescIsSequenceRequired.Default.(bool)
	// approvalruleDescMinApprovalPercentage is the schema descriptor for min_approval_percentage field.
	approvalruleDescMinApprovalPercentage := approvalruleFields[7].Descriptor()
	// approvalrule.DefaultMinApprovalPercentage holds the default value on creation for the min_approval_percentage field.
	approvalrule.DefaultMinApprovalPercentage = approvalruleDescMinApprovalPercentage.Default.(int)
	// approvalrule.MinApprovalPercentageValidator is a validator for the "min_approval_percentage" field. It is called by the builders before save.
	approvalrule.MinApprovalPercentageValidator = func() func(int) error {
		validators := approvalruleDescMinApprovalPercentage.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(min_approval_percentage int) error {
			for _, fn := range fns {
				if err := fn(min_approval_percentage); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// approvalruleDescActive is the schema descriptor for active field.
	approvalruleDescActive := approvalruleFields[8].Descriptor()
	// approvalrule.DefaultActive holds the default value on creation for the active field.
	approvalrule.DefaultActive = approvalruleDescActive.Default.(bool)
	// approvalruleDescCreatedBy is the schema descriptor for created_by field.
	approvalruleDescCreatedBy := approvalruleFields[9].Descriptor()
	// approvalrule.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	approvalrule.CreatedByValidator = approvalruleDescCreatedBy.Validators[0].(func(string) error)
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescCompanyID is the schema descriptor for company_id field.
	auditlogDescCompanyID := auditlogFields[1].Descriptor()
	// auditlog.CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	auditlog.CompanyIDValidator = auditlogDescCompanyID.Validators[0].(func(string) error)
	// auditlogDescActorID is the schema descriptor for actor_id field.
	auditlogDescActorID := auditlogFields[2].Descriptor()
	// auditlog.ActorIDValidator is a validator for the "actor_id" field. It is called by the builders before save.
	auditlog.ActorIDValidator = auditlogDescActorID.Validators[0].(func(string) error)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[3].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[4].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[5].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	companyMixin := schema.Company{}.Mixin()
	companyMixinFields0 := companyMixin[0].Fields()
	_ = companyMixinFields0
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyMixinFields0[0].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyMixinFields0[1].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescDefaultCurrency is the schema descriptor for default_currency field.
	companyDescDefaultCurrency := companyFields[2].Descriptor()
	// company.DefaultDefaultCurrency holds the default value on creation for the default_currency field.
	company.DefaultDefaultCurrency = companyDescDefaultCurrency.Default.(string)
	expenseMixin := schema.Expense{}.Mixin()
	expenseMixinFields0 := expenseMixin[0].Fields()
	_ = expenseMixinFields0
	expenseFields := schema.Expense{}.Fields()
	_ = expenseFields
	// expenseDescCreatedAt is the schema descriptor for created_at field.
	expenseDescCreatedAt := expenseMixinFields0[0].Descriptor()
	// expense.DefaultCreatedAt holds the default value on creation for the created_at field.
	expense.DefaultCreatedAt = expenseDescCreatedAt.Default.(func() time.Time)
	// expenseDescUpdatedAt is the schema descriptor for updated_at field.
	expenseDescUpdatedAt := expenseMixinFields0[1].Descriptor()
	// expense.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	expense.DefaultUpdatedAt = expenseDescUpdatedAt.Default.(func() time.Time)
	// expense.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	expense.UpdateDefaultUpdatedAt = expenseDescUpdatedAt.UpdateDefault.(func() time.Time)
	// expenseDescCompanyID is the schema descriptor for company_id field.
	expenseDescCompanyID := expenseFields[1].Descriptor()
	// expense.CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	expense.CompanyIDValidator = expenseDescCompanyID.Validators[0].(func(string) error)
	// expenseDescSubmitterID is the schema descriptor for submitter_id field.
	expenseDescSubmitterID := expenseFields[2].Descriptor()
	// expense.SubmitterIDValidator is a validator for the "submitter_id" field. It is called by the builders before save.
	expense.SubmitterIDValidator = expenseDescSubmitterID.Validators[0].(func(string) error)
	// expenseDescAmount is the schema descriptor for amount field.
	expenseDescAmount := expenseFields[3].Descriptor()
	// expense.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	expense.AmountValidator = expenseDescAmount.Validators[0].(func(int64) error)
	// expenseDescCurrency is the schema descriptor for currency field.
	expenseDescCurrency := expenseFields[4].Descriptor()
	// expense.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	expense.CurrencyValidator = expenseDescCurrency.Validators[0].(func(string) error)
	// expenseDescCategory is the schema descriptor for category field.
	expenseDescCategory := expenseFields[5].Descriptor()
	// expense.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	expense.CategoryValidator = expenseDescCategory.Validators[0].(func(string) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescRecipientID is the schema descriptor for recipient_id field.
	notificationDescRecipientID := notificationFields[1].Descriptor()
	// notification.RecipientIDValidator is a validator for the "recipient_id" field. It is called by the builders before save.
	notification.RecipientIDValidator = notificationDescRecipientID.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[7].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	ruleapproverMixin := schema.RuleApprover{}.Mixin()
	ruleapproverMixinFields0 := ruleapproverMixin[0].Fields()
	_ = ruleapproverMixinFields0
	ruleapproverFields := schema.RuleApprover{}.Fields()
	_ = ruleapproverFields
	// ruleapproverDescCreatedAt is the schema descriptor for created_at field.
	ruleapproverDescCreatedAt := ruleapproverMixinFields0[0].Descriptor()
	// ruleapprover.DefaultCreatedAt holds the default value on creation for the created_at field.
	ruleapprover.DefaultCreatedAt = ruleapproverDescCreatedAt.Default.(func() time.Time)
	// ruleapproverDescRuleID is the schema descriptor for rule_id field.
	ruleapproverDescRuleID := ruleapproverFields[1].Descriptor()
	// ruleapprover.RuleIDValidator is a validator for the "rule_id" field. It is called by the builders before save.
	ruleapprover.RuleIDValidator = ruleapproverDescRuleID.Validators[0].(func(string) error)
	// ruleapproverDescApproverID is the schema descriptor for approver_id field.
	ruleapproverDescApproverID := ruleapproverFields[2].Descriptor()
	// ruleapprover.ApproverIDValidator is a validator for the "approver_id" field. It is called by the builders before save.
	ruleapprover.ApproverIDValidator = ruleapproverDescApproverID.Validators[0].(func(string) error)
	// ruleapproverDescIsRequired is the schema descriptor for is_required field.
	ruleapproverDescIsRequired := ruleapproverFields[4].Descriptor()
	// ruleapprover.DefaultIsRequired holds the default value on creation for the is_required field.
	ruleapprover.DefaultIsRequired = ruleapproverDescIsRequired.Default.(bool)
	ruleconditionMixin := schema.RuleCondition{}.Mixin()
	ruleconditionMixinFields0 := ruleconditionMixin[0].Fields()
	_ = ruleconditionMixinFields0
	ruleconditionFields := schema.RuleCondition{}.Fields()
	_ = ruleconditionFields
	// ruleconditionDescCreatedAt is the schema descriptor for created_at field.
	ruleconditionDescCreatedAt := ruleconditionMixinFields0[0].Descriptor()
	// rulecondition.DefaultCreatedAt holds the default value on creation for the created_at field.
	rulecondition.DefaultCreatedAt = ruleconditionDescCreatedAt.Default.(func() time.Time)
	// ruleconditionDescRuleID is the schema descriptor for rule_id field.
	ruleconditionDescRuleID := ruleconditionFields[1].Descriptor()
	// rulecondition.RuleIDValidator is a validator for the "rule_id" field. It is called by the builders before save.
	rulecondition.RuleIDValidator = ruleconditionDescRuleID.Validators[0].(func(string) error)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescCompanyID is the schema descriptor for company_id field.
	userDescCompanyID := userFields[1].Descriptor()
	// user.CompanyIDValidator is a validator for the "company_id" field. It is called by the builders before save.
	user.CompanyIDValidator = userDescCompanyID.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[3].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescActive is the schema descriptor for active field.
	userDescActive := userFields[8].Descriptor()
	// user.DefaultActive holds the default value on creation for the active field.
	user.DefaultActive = userDescActive.Default.(bool)
}
