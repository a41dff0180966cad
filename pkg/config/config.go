// Package config resolves the collector configuration.
//
// Values come from three layers folded left to right: built-in defaults, an optional
// JSON or YAML config file, and explicitly given command-line flags. Each layer after the
// defaults is an Overrides value whose nil fields leave the previous value untouched.
package config

import "slices"

// DefaultFileName is the config file looked up when --config is not given.
const DefaultFileName = "config.json"

// Config holds the options for one collector run. It is not modified after Merge.
type Config struct {
	InputDir       string   `json:"input_dir" yaml:"input_dir"`
	OutputDir      string   `json:"output_dir" yaml:"output_dir"`
	Filename       string   `json:"filename" yaml:"filename"`
	FileExtensions []string `json:"file_extensions" yaml:"file_extensions"`
	ExcludeDirs    []string `json:"exclude_dirs" yaml:"exclude_dirs"`
	ExcludeFiles   []string `json:"exclude_files" yaml:"exclude_files"`
	MaxFileSize    Size     `json:"max_file_size" yaml:"max_file_size"`
	MaxPages       int      `json:"max_pages" yaml:"max_pages"`
	AddLineNumbers bool     `json:"add_line_numbers" yaml:"add_line_numbers"`
	DocumentTitle  string   `json:"document_title" yaml:"document_title"`
	IgnoreFile     string   `json:"ignore_file" yaml:"ignore_file"`
	CodeFont       string   `json:"code_font" yaml:"code_font"`
	EastAsiaFont   string   `json:"east_asia_font" yaml:"east_asia_font"`
	PDFFont        string   `json:"pdf_font" yaml:"pdf_font"`
}

// Overrides is a partial Config. Nil fields are not set by the layer.
type Overrides struct {
	InputDir       *string   `json:"input_dir" yaml:"input_dir"`
	OutputDir      *string   `json:"output_dir" yaml:"output_dir"`
	Filename       *string   `json:"filename" yaml:"filename"`
	FileExtensions *[]string `json:"file_extensions" yaml:"file_extensions"`
	ExcludeDirs    *[]string `json:"exclude_dirs" yaml:"exclude_dirs"`
	ExcludeFiles   *[]string `json:"exclude_files" yaml:"exclude_files"`
	MaxFileSize    *Size     `json:"max_file_size" yaml:"max_file_size"`
	MaxPages       *int      `json:"max_pages" yaml:"max_pages"`
	AddLineNumbers *bool     `json:"add_line_numbers" yaml:"add_line_numbers"`
	DocumentTitle  *string   `json:"document_title" yaml:"document_title"`
	IgnoreFile     *string   `json:"ignore_file" yaml:"ignore_file"`
	CodeFont       *string   `json:"code_font" yaml:"code_font"`
	EastAsiaFont   *string   `json:"east_asia_font" yaml:"east_asia_font"`
	PDFFont        *string   `json:"pdf_font" yaml:"pdf_font"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		InputDir:  "./src",
		OutputDir: "./output",
		Filename:  "project-code.docx",
		FileExtensions: []string{
			".py", ".js", ".java", ".cpp", ".c", ".h", ".html", ".css", ".ts", ".jsx", ".tsx",
			".vue", ".php", ".go", ".rs", ".rb", ".swift", ".kt", ".cs", ".sql", ".xml", ".json",
			".yaml", ".yml", ".md", ".txt",
		},
		ExcludeDirs: []string{
			"node_modules", "__pycache__", ".git", "dist", "build", "target", "bin", "obj",
			"vendor", ".vscode", ".idea",
		},
		ExcludeFiles:   []string{"*.min.js", "*.min.css", "package-lock.json", "yarn.lock"},
		MaxFileSize:    "1MB",
		MaxPages:       0,
		AddLineNumbers: true,
		DocumentTitle:  "Project Source Code",
		IgnoreFile:     ".codedocxignore",
		CodeFont:       "Consolas",
		EastAsiaFont:   "Microsoft YaHei",
	}
}

// Merge folds layers onto base in order; later layers win.
func Merge(base Config, layers ...Overrides) Config {
	cfg := base.clone()
	for _, layer := range layers {
		layer.applyTo(&cfg)
	}
	return cfg
}

func (c Config) clone() Config {
	c.FileExtensions = slices.Clone(c.FileExtensions)
	c.ExcludeDirs = slices.Clone(c.ExcludeDirs)
	c.ExcludeFiles = slices.Clone(c.ExcludeFiles)
	return c
}

func (o Overrides) applyTo(c *Config) {
	setString(&c.InputDir, o.InputDir)
	setString(&c.OutputDir, o.OutputDir)
	setString(&c.Filename, o.Filename)
	setSlice(&c.FileExtensions, o.FileExtensions)
	setSlice(&c.ExcludeDirs, o.ExcludeDirs)
	setSlice(&c.ExcludeFiles, o.ExcludeFiles)
	if o.MaxFileSize != nil {
		c.MaxFileSize = *o.MaxFileSize
	}
	if o.MaxPages != nil {
		c.MaxPages = *o.MaxPages
	}
	if o.AddLineNumbers != nil {
		c.AddLineNumbers = *o.AddLineNumbers
	}
	setString(&c.DocumentTitle, o.DocumentTitle)
	setString(&c.IgnoreFile, o.IgnoreFile)
	setString(&c.CodeFont, o.CodeFont)
	setString(&c.EastAsiaFont, o.EastAsiaFont)
	setString(&c.PDFFont, o.PDFFont)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setSlice(dst *[]string, v *[]string) {
	if v != nil {
		*dst = slices.Clone(*v)
	}
}
