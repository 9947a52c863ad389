package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/anilkumarravuri/portfolio-api/internal/observability"
	"github.com/anilkumarravuri/portfolio-api/internal/store"
	"github.com/anilkumarravuri/portfolio-api/schemas"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the seed data and response contracts",
	Long:  `Run the startup data-integrity verification plus JSON Schema conformance of every collection, without starting the server.`,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	printer := observability.NewPrinter(os.Stdout)

	st, err := store.New()
	if err != nil {
		printer.PrintCheckResults([]observability.CheckResult{
			{Name: "seed verification", Err: err},
		})
		return fmt.Errorf("seed data is invalid")
	}

	profile := st.Profile()
	printer.PrintDataSummary(profile.Profile(), len(st.Certifications().List()), len(st.Blog().List()))

	type contractCheck struct {
		name    string
		schema  string
		payload any
	}
	checks := []contractCheck{
		{"profile contract", schemas.Profile, profile.Profile()},
		{"summary contract", schemas.ProfileSummary, profile.Summary()},
		{"skills contract", schemas.SkillGroups, profile.Skills()},
		{"experience contract", schemas.ExperienceList, profile.Experience()},
		{"education contract", schemas.EducationList, profile.Education()},
		{"certifications contract", schemas.CertificationList, st.Certifications().List()},
		{"blog list contract", schemas.BlogList, st.Blog().List()},
	}
	for _, summary := range st.Blog().List() {
		post, err := st.Blog().Get(summary.Slug)
		if err != nil {
			return fmt.Errorf("listed slug %q not retrievable: %w", summary.Slug, err)
		}
		checks = append(checks, contractCheck{
			name:    fmt.Sprintf("post contract (%s)", post.Slug),
			schema:  schemas.BlogPost,
			payload: post,
		})
	}

	results := make([]observability.CheckResult, len(checks)+1)
	results[0] = observability.CheckResult{Name: "seed verification"}

	// Contract checks are independent; fan them out.
	var g errgroup.Group
	for i, c := range checks {
		g.Go(func() error {
			results[i+1] = observability.CheckResult{Name: c.name, Err: validatePayload(c.schema, c.payload)}
			return results[i+1].Err
		})
	}
	failed := g.Wait() != nil

	printer.PrintCheckResults(results)

	if failed {
		return fmt.Errorf("contract checks failed")
	}
	return nil
}

func validatePayload(schema string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return schemas.Validate(schema, body)
}
