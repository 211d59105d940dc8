// Package config holds the migration configuration: which script files
// the refactor touches, where the facade lives, and the export mapping
// used to regenerate it.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🏷️ Marker is the literal line that separates a script file's header
// region from its export/body region. At most the first occurrence is
// meaningful as a split boundary.
const Marker = "// Export all functions directly"

// 🔄 ExportEntry maps an unqualified exported name to its qualified
// source (e.g. "formatDate" -> "DataUtils.formatDate").
type ExportEntry struct {
	Name   string // Exported (unqualified) name
	Source string // Qualified source, "Module.function"
}

// 📚 Config represents the complete migration configuration
type Config struct {
	// Dir is the directory containing the script files
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty" hcl:"dir,optional"`
	// FacadeFile re-exports functions from the utils modules under
	// unqualified names
	FacadeFile string `json:"facade_file,omitempty" yaml:"facade_file,omitempty" hcl:"facade_file,optional"`
	// SourceFile is merged into FacadeFile by the combine operation
	SourceFile string `json:"source_file,omitempty" yaml:"source_file,omitempty" hcl:"source_file,optional"`
	// FacadeToken is the literal removed from every listed file by the
	// remove-facade operation
	FacadeToken string `json:"facade_token,omitempty" yaml:"facade_token,omitempty" hcl:"facade_token,optional"`
	// ScriptFiles is the ordered list of files the list-iterating
	// operations touch; missing files are skipped
	ScriptFiles []string `json:"script_files,omitempty" yaml:"script_files,omitempty" hcl:"script_files,optional"`
	// IgnorePatterns are doublestar globs; listed files matching one are
	// skipped without output
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`
	// Async processes the file list concurrently instead of in order
	Async bool `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`

	location string // where the config was loaded from, if anywhere
}

// 🗺️ DefaultScriptFiles is the fixed list of project script files, in
// iteration order.
var DefaultScriptFiles = []string{
	"Code.gs",
	"Config.gs",
	"DataRetrieval.gs",
	"Email.gs",
	"FetchEconomicEvents.gs",
	"FundamentalMetrics.gs",
	"GoogleSearch.gs",
	"KeyMarketIndicators.gs",
	"MacroeconomicFactors.gs",
	"MarketSentiment.gs",
	"Prompt.gs",
	"Setup.gs",
	"StockDataRetriever.gs",
}

// 🗺️ DefaultExports is the facade's export mapping, in the order the
// entries appear in the regenerated file.
var DefaultExports = []ExportEntry{
	{Name: "enhancedCleanAnalysisResult", Source: "CoreUtils.enhancedCleanAnalysisResult"},
	{Name: "testEnhancedJsonParsing", Source: "CoreUtils.testEnhancedJsonParsing"},
	{Name: "formatHtmlEmailBodyWithAnalysis", Source: "EmailUtils.formatHtmlEmailBodyWithAnalysis"},
	{Name: "generateEmailTemplate", Source: "EmailUtils.generateEmailTemplate"},
	{Name: "generateMarketSentimentSection", Source: "MarketSentiment.generateMarketSentimentSection"},
	{Name: "generateMarketIndicatorsSection", Source: "MarketIndicators.generateMarketIndicatorsSection"},
	{Name: "generateFundamentalMetricsSection", Source: "FundamentalMetrics.generateFundamentalMetricsSection"},
	{Name: "generateMacroeconomicFactorsSection", Source: "MacroeconomicFactors.generateMacroeconomicFactorsSection"},
	{Name: "generateGeopoliticalRisksSection", Source: "GeopoliticalRisks.generateGeopoliticalRisksSection"},
	{Name: "formatDate", Source: "DataUtils.formatDate"},
	{Name: "formatValue", Source: "DataUtils.formatValue"},
	{Name: "formatNumberWithSuffix", Source: "DataUtils.formatNumberWithSuffix"},
	{Name: "saveToGoogleDrive", Source: "DataUtils.saveToGoogleDrive"},
	{Name: "retrieveMacroeconomicFactors", Source: "MacroeconomicFactors.retrieveMacroeconomicFactors"},
	{Name: "retrieveTreasuryYields", Source: "MacroeconomicFactors.retrieveTreasuryYields"},
	{Name: "retrieveInflationData", Source: "MacroeconomicFactors.retrieveInflationData"},
	{Name: "retrieveFedPolicy", Source: "MacroeconomicFactors.retrieveFedPolicy"},
}

// 🏭 Default returns the configuration matching the original refactor
// scripts: current directory, Utils facade names, the fixed file list.
func Default() *Config {
	return &Config{
		Dir:         ".",
		FacadeFile:  "Utils_Main.gs",
		SourceFile:  "Utils.gs",
		FacadeToken: "Utils_Main",
		ScriptFiles: append([]string(nil), DefaultScriptFiles...),
	}
}

// 🔍 Validate checks if the configuration is usable
func (cfg *Config) Validate() error {
	if cfg.FacadeFile == "" {
		return errors.New("facade_file is required")
	}
	if cfg.SourceFile == "" {
		return errors.New("source_file is required")
	}
	if cfg.FacadeToken == "" {
		return errors.New("facade_token is required")
	}
	if len(cfg.ScriptFiles) == 0 {
		return errors.New("script_files must not be empty")
	}
	for i, f := range cfg.ScriptFiles {
		if f == "" {
			return errors.Errorf("script_files[%d] is empty", i)
		}
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	cfg.Dir = filepath.Clean(cfg.Dir)
	return nil
}

// 📍 Path resolves a script filename against the configured directory.
func (cfg *Config) Path(name string) string {
	return filepath.Join(cfg.Dir, name)
}

// 📍 Location returns where the config was loaded from, or "" for the
// built-in defaults.
func (cfg *Config) Location() string {
	return cfg.location
}

// 📝 ExportBlock renders the facade's export region: the marker line
// followed by the Object.assign mapping. The output is byte-stable so
// the regenerated facade is reproducible.
func ExportBlock(entries []ExportEntry) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(Marker)
	sb.WriteString("\nObject.assign(this, {\n")
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("  %s: %s", e.Name, e.Source))
		if i < len(entries)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("});\n")
	return sb.String()
}
