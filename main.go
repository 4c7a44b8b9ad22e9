package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	sourceFlag  string
	contentFlag string
	urlFlag     string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:           "lml-upload",
	Short:         "Upload data to the LML Rails admin endpoint",
	Long:          `A tool for submitting content uploads to the LML admin interface using a pre-obtained session cookie.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(defaultSettingsFile)
		if err != nil {
			return err
		}

		baseURL := settings.BaseURL
		if cmd.Flags().Changed("url") {
			baseURL = urlFlag
		}
		baseURL = strings.TrimRight(baseURL, "/")

		source := sourceFlag
		if source == "" {
			source = defaultSourceName(time.Now())
			fmt.Printf("Using default source: %q\n", source)
		}

		content, err := loadContentFile(contentFlag)
		if err != nil {
			return err
		}

		// The session credential must be in place before any network call.
		sessionID, err := loadSessionID(settings.SessionFile)
		if err != nil {
			return err
		}
		fmt.Printf("Loaded session ID from %s\n", settings.SessionFile)

		uploader := NewUploader(baseURL, sessionID, settings.UserAgent, verboseFlag)

		fmt.Printf("\nSubmitting data to %s%s\n", baseURL, uploadsPath)
		fmt.Printf("Source: %s\n", source)
		fmt.Printf("Content file: %s\n", contentFlag)

		result, err := uploader.Submit(UploadRequest{Source: source, Content: content})
		if err != nil {
			return err
		}

		return reportResult(result)
	},
}

// reportResult prints the submission outcome and converts non-success
// outcomes into errors so the process exits non-zero.
func reportResult(result *SubmissionResult) error {
	switch result.Status {
	case StatusSuccess:
		if result.Location != "" {
			fmt.Printf("Success! Redirected to: %s\n", result.Location)
		} else {
			fmt.Printf("Success! Status code: %d\n", result.StatusCode)
		}
		fmt.Println("\nUpload completed successfully!")
		return nil
	case StatusValidationFailed:
		if len(result.Errors) > 0 {
			fmt.Println("Error messages found in response:")
			for _, msg := range result.Errors {
				fmt.Printf("  - %s\n", msg)
			}
		}
		return fmt.Errorf("upload rejected by server (status %d)", result.StatusCode)
	default:
		return fmt.Errorf("unexpected status code: %d", result.StatusCode)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&sourceFlag, "source", "s", "", "Source label for the upload")
	rootCmd.Flags().StringVarP(&contentFlag, "content", "c", "", "Path to content file")
	rootCmd.Flags().StringVarP(&urlFlag, "url", "u", defaultBaseURL, "Base URL of the Rails application")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.MarkFlagRequired("content")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
