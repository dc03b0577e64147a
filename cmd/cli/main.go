package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/darius04/testfiles/internal/adapters/desktop"
	"github.com/darius04/testfiles/internal/adapters/factory"
	"github.com/darius04/testfiles/internal/adapters/render"
	"github.com/darius04/testfiles/internal/application"
	"github.com/darius04/testfiles/internal/ports"
)

// Variables to hold flag values
var outputDir string

// categoryMarkers are the one-line progress markers printed after each builder.
var categoryMarkers = map[ports.Category]string{
	ports.CategoryText:     "📝 Created text files",
	ports.CategoryImage:    "🖼️  Created image files",
	ports.CategoryDocument: "📄 Created document files",
	ports.CategoryArchive:  "📦 Created archive files",
	ports.CategoryCode:     "💻 Created code files",
	ports.CategoryMisc:     "📋 Created other files",
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "testfiles",
		Short: "Generates sample files for testing the File Organizer.",
		Long: `testfiles creates a fixed set of sample files (text, images, documents,
archives, code and misc) in a test_files folder on the user's desktop, for
exercising the File Organizer's categorization and moving.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}

	rootCmd.Flags().StringVarP(&outputDir, "dir", "d", "", "Generate into this directory instead of the desktop test_files folder")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() {
	fmt.Println("🚀 File Organizer Pro - Test Files Creator")
	fmt.Println(strings.Repeat("=", 50))

	// --- Composition Root: select resolver and renderer, wire the service ---
	var resolver ports.TargetResolver
	if outputDir != "" {
		resolver = desktop.NewFixed(outputDir)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			reportFailure(err)
			return
		}
		resolver = desktop.New(home)
	}

	renderer, available := render.Detect()
	if !available {
		color.Yellow("⚠️  Image rendering unavailable, creating placeholder image files.")
	}
	builders := factory.NewStaticBuilderSet(renderer)
	// --- End Composition Root ---

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " creating test files..."
	s.Start()
	progress := func(category ports.Category, _ []string) {
		// Stop the spinner around the marker line so it stays on its own row.
		s.Stop()
		fmt.Println(categoryMarkers[category])
		s.Restart()
	}

	service := application.NewFixtureService(resolver, builders, !available, progress)
	manifest, err := service.Run()
	s.Stop()
	if err != nil {
		reportFailure(err)
		return
	}

	fmt.Printf("📂 Location: %s\n", manifest.Dir)
	fmt.Printf("\n📋 Created %d files:\n", len(manifest.Files))
	for _, name := range manifest.Files {
		fmt.Printf("   • %s\n", name)
	}
	color.Green("\n✅ All test files created successfully!")
	fmt.Println("🎯 Now you can test the File Organizer with these files!")
}

// reportFailure prints the error and a remediation hint. The process still
// exits 0: consumers of the original tool check the console text or the
// resulting directory, not the exit code.
func reportFailure(err error) {
	color.Red("❌ Error creating test files: %v", err)
	fmt.Println("💡 Try running as administrator if you get permission errors")
}
