package commands

import (
	"fmt"

	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/internal/seed"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/validation"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	seedFile  string
	seedReset bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load projects, skills and certificates from a YAML file",
	Long: `Create every record in the fixture file through the same service the API uses,
so defaults and validation apply. Invalid records are reported and skipped.
With --reset, existing rows of each kind present in the file are deleted first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fx, err := seed.LoadFile(seedFile)
		if err != nil {
			return err
		}

		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Migrate(postgres.Models()...); err != nil {
			return err
		}

		validate := validation.New()
		seeder := &seed.Seeder{
			Projects:     usecase.NewProjectUsecase(postgres.NewProjectRepository(db.Gorm), validate),
			Skills:       usecase.NewSkillUsecase(postgres.NewSkillRepository(db.Gorm), validate),
			Certificates: usecase.NewCertificateUsecase(postgres.NewCertificateRepository(db.Gorm), validate),
		}

		sum, err := seeder.Run(cmd.Context(), fx, seedReset, printResult)
		if err != nil {
			return err
		}

		fmt.Println()
		if sum.Deleted > 0 {
			color.Yellow("deleted %d existing record(s)", sum.Deleted)
		}
		color.Green("created %d record(s)", sum.Created)
		if sum.Failed > 0 {
			color.Red("skipped %d invalid record(s)", sum.Failed)
			return fmt.Errorf("%d fixture(s) failed validation", sum.Failed)
		}
		return nil
	},
}

func printResult(r seed.Result) {
	if r.Err != nil {
		color.Red("\t%-13s #%-3d %v", r.Kind, r.Index, r.Err)
		return
	}
	color.Green("\t%-13s #%-3d created id=%d", r.Kind, r.Index, r.ID)
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "seeds.yaml", "fixture file")
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "delete existing rows of the seeded kinds first")
}
