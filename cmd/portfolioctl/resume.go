package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	resumeUC "github.com/khoahotran/portfolio/internal/application/usecase/resume"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Render the HTML resume to a file",
	Long:  "Renders the same standalone HTML resume the site serves at /resume.html.",
	RunE:  runResume,
}

var (
	resumeDataFile  string
	resumeOutputDir string
)

func init() {
	resumeCmd.Flags().StringVarP(&resumeDataFile, "file", "f", "", "Path to a dataset JSON file (defaults to the embedded dataset)")
	resumeCmd.Flags().StringVarP(&resumeOutputDir, "out", "o", ".", "Directory to write the resume into")

	rootCmd.AddCommand(resumeCmd)
}

func runResume(cmd *cobra.Command, _ []string) error {
	d, err := loadDataset(cmd.Context(), resumeDataFile)
	if err != nil {
		return err
	}

	content, err := resumeUC.Render(d, time.Now())
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	if err := os.MkdirAll(resumeOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(resumeOutputDir, resumeUC.Filename(d.Personal.BasicInfo.FullName))
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", path)
	return nil
}
