package main

import (
	"fmt"

	"ashi-remedies/internal/domain"
	"ashi-remedies/internal/matching"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var query, tag string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter remedies by free text and symptom tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := loadSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			for r := range matching.FilterRemedies(snap.Remedies, query, matching.ParseTag(tag)) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.ID, r.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "text matched against title and description")
	cmd.Flags().StringVarP(&tag, "tag", "t", matching.AllTags, "symptom tag, or All")
	return cmd
}

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List symptom tags in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := loadSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			for _, tag := range matching.SymptomTags(snap.Remedies) {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match INGREDIENT...",
		Short: "Find the first remedy that uses every given ingredient",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range args {
				if !snap.HasIngredient(id) {
					return fmt.Errorf("unknown ingredient %q", id)
				}
			}
			remedy, ok := matching.MatchIngredients(args, snap.Remedies)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no match")
				return nil
			}
			return printJSON(cmd, remedy)
		},
	}
}

type scoreResult struct {
	Answered int                  `json:"answered"`
	Total    int                  `json:"total"`
	Tally    domain.ScoreTally    `json:"tally"`
	Profile  *domain.DoshaProfile `json:"profile,omitempty"`
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score DOSHA...",
		Short: "Score quiz answers given as dosha labels in question order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			scorer, err := matching.NewScorer(snap.Questions)
			if err != nil {
				return err
			}
			if len(args) > scorer.Total() {
				return fmt.Errorf("got %d answers for %d questions", len(args), scorer.Total())
			}
			for _, label := range args {
				d, err := domain.ParseDosha(label)
				if err != nil {
					return err
				}
				if err := scorer.Answer(d); err != nil {
					return err
				}
			}
			res := scoreResult{Answered: scorer.Index(), Total: scorer.Total(), Tally: scorer.Tally()}
			if d, ok := scorer.Dominant(); ok {
				profile := domain.ProfileFor(d)
				res.Profile = &profile
			}
			return printJSON(cmd, res)
		},
	}
}
