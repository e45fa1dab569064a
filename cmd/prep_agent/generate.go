package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/interview-prep/internal/config"
	"github.com/jonathan/interview-prep/internal/guide"
	"github.com/jonathan/interview-prep/internal/types"
	"github.com/jonathan/interview-prep/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an interview preparation guide",
	Long:  `Researches the company on the web and generates a structured interview preparation guide for the given role, printed to stdout and optionally written to a file.`,
	RunE:  runGenerate,
}

var (
	generateCompany string
	generateRole    string
	generateOut     string
	generateColor   string
	generateNoColor bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateCompany, "company", "c", "", "Company name (required)")
	generateCmd.Flags().StringVarP(&generateRole, "role", "r", "", "Job role (required)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Write the guide to a file")
	generateCmd.Flags().StringVar(&generateColor, "color", "auto", "Color output: auto, always, never")
	generateCmd.Flags().BoolVar(&generateNoColor, "no-color", false, "Disable colored output")

	if err := generateCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}
	if err := generateCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	req := types.PrepRequest{CompanyName: generateCompany, JobRole: generateRole}
	req.Normalize()
	if req.CompanyName == "" || req.JobRole == "" {
		return fmt.Errorf("please enter both a company name and a job role")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	printer := ui.New(os.Stdout, os.Stderr, ui.NormalizeColorMode(generateColor), generateNoColor)

	// Keep structured logs off the terminal unless asked for
	log := zerolog.Nop()
	if rootVerbose {
		log = newLogger()
	}

	service, llmClient, err := buildService(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = llmClient.Close() }()

	progress := func(event guide.ProgressEvent) {
		switch event.Step {
		case guide.StepResearch:
			printer.Infof("🔍 %s", event.Message)
		case guide.StepInsights:
			printer.Headerf("🌐 Web Insights")
			printer.Printf("%s\n\n", event.Content)
		case guide.StepGenerate:
			printer.Infof("🧠 %s", event.Message)
		}
	}

	result, err := service.Prepare(context.Background(), req, progress)
	if err != nil {
		return err
	}

	printer.Successf("✅ Interview Preparation Guide Generated!")
	printer.Headerf("📘 AI Interview Guide")
	printer.Printf("%s\n", result.Guide)

	if generateOut != "" {
		if err := writeGuideFile(generateOut, result.Guide); err != nil {
			return err
		}
		printer.Successf("Guide written to %s", generateOut)
	}

	return nil
}

func writeGuideFile(path, content string) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
