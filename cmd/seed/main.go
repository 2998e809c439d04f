// Package main provides data seeding for the approval engine.
//
// The server auto-migrates in dev mode; this command performs an idempotent
// data bootstrap on top: a demo company, a default admin, a small reporting
// chain and one starter approval rule.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"expensedesk.io/approvalflow/ent"
	entrule "expensedesk.io/approvalflow/ent/approvalrule"
	"expensedesk.io/approvalflow/ent/user"
	"expensedesk.io/approvalflow/internal/api/handlers"
	"expensedesk.io/approvalflow/internal/config"
	"expensedesk.io/approvalflow/internal/infrastructure"
	"expensedesk.io/approvalflow/internal/pkg/logger"
	"expensedesk.io/approvalflow/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	// Database and River migrations are expected to be executed before
	// seeding. This command only performs idempotent data bootstrap.

	companyID, err := seedCompany(ctx, client)
	if err != nil {
		return fmt.Errorf("seed company: %w", err)
	}

	users, err := seedUsers(ctx, client, companyID)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	if err := seedStarterRule(ctx, client, companyID, users); err != nil {
		return fmt.Errorf("seed rule: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

const demoCompanyID = "company-demo"

func seedCompany(ctx context.Context, client *ent.Client) (string, error) {
	_, err := client.Company.Create().
		SetID(demoCompanyID).
		SetName("Demo Corp").
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			logger.Info("Demo company already exists, skipping")
			return demoCompanyID, nil
		}
		return "", err
	}
	logger.Info("Seeded demo company", zap.String("company_id", demoCompanyID))
	return demoCompanyID, nil
}

// seedUser describes one bootstrap user.
type seedUser struct {
	ID         string
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
	ManagerID  string
}

func bootstrapUsers() []seedUser {
	return []seedUser{
		{
			ID: "user-demo-admin", Name: "Default Administrator",
			Email: "admin@demo.test", Password: "admin",
			Role: "ADMIN",
		},
		{
			ID: "user-demo-manager", Name: "Morgan Manager",
			Email: "manager@demo.test", Password: "manager",
			Role: "MANAGER", Department: "ENGINEERING",
		},
		{
			ID: "user-demo-employee", Name: "Erin Employee",
			Email: "employee@demo.test", Password: "employee",
			Role: "EMPLOYEE", Department: "ENGINEERING",
			ManagerID: "user-demo-manager",
		},
	}
}

func seedUsers(ctx context.Context, client *ent.Client, companyID string) ([]seedUser, error) {
	users := bootstrapUsers()
	for _, u := range users {
		hash, err := handlers.HashPassword(u.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.Email, err)
		}

		create := client.User.Create().
			SetID(u.ID).
			SetCompanyID(companyID).
			SetName(u.Name).
			SetEmail(u.Email).
			SetPasswordHash(hash).
			SetRole(userRole(u.Role)).
			SetDepartment(u.Department)
		if u.ManagerID != "" {
			create = create.SetManagerID(u.ManagerID)
		}

		if _, err := create.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("User already exists, skipping", zap.String("email", u.Email))
				continue
			}
			return nil, fmt.Errorf("create user %s: %w", u.Email, err)
		}
		logger.Info("Seeded user", zap.String("email", u.Email), zap.String("role", u.Role))
	}
	return users, nil
}

// seedStarterRule creates one catch-all rule: any expense of 500.00 or more
// needs the manager plus the admin as a fallback approver.
func seedStarterRule(ctx context.Context, client *ent.Client, companyID string, users []seedUser) error {
	exists, err := client.ApprovalRule.Query().
		Where(entrule.CompanyID(companyID)).
		Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		logger.Info("Approval rules already present, skipping")
		return nil
	}

	var adminID string
	for _, u := range users {
		if u.Role == "ADMIN" {
			adminID = u.ID
		}
	}
	if adminID == "" {
		return fmt.Errorf("no admin user seeded")
	}

	directory := service.NewDirectory(client)
	rules := service.NewRuleService(client, directory)
	_, err = rules.CreateRule(ctx, companyID, adminID, service.RuleInput{
		Name:                    "Expenses of 500 and up",
		Description:             "Manager approval for any expense at or above 500.00",
		Priority:                10,
		ManagerApprovalRequired: true,
		MinApprovalPercentage:   100,
		Active:                  true,
		Conditions: []service.ConditionInput{
			{Kind: "AMOUNT_THRESHOLD", MinAmount: 50000},
		},
		Approvers: []service.ApproverInput{
			{ApproverID: adminID, Required: true},
		},
	})
	if err != nil {
		return err
	}

	logger.Info("Seeded starter approval rule")
	return nil
}

func userRole(role string) user.Role {
	switch role {
	case "ADMIN":
		return user.RoleADMIN
	case "MANAGER":
		return user.RoleMANAGER
	default:
		return user.RoleEMPLOYEE
	}
}
