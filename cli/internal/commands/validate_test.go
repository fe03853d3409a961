package commands

import (
	"testing"

	"github.com/spf13/pflag"
)

func validate(t *testing.T, cmd Command, args []string) error {
	t.Helper()
	flags := pflag.NewFlagSet(cmd.Command(), pflag.ContinueOnError)
	cmd.BindFlags(flags)
	if err := flags.Parse(args); err != nil {
		t.Fatalf("flag parsing failed: %v", err)
	}
	return cmd.ValidateArgs(flags, flags.Args())
}

func TestReplaceValueCmd_ValidateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "Valid flags",
			args:    []string{"--single-file", "index.html", "--xpath", "//title", "--new-value", "x"},
			wantErr: false,
		},
		{
			name:    "Empty new value",
			args:    []string{"--file-pattern", "**/*.html", "--xpath", "//@href", "--new-value="},
			wantErr: false,
		},
		{
			name:    "No files is allowed",
			args:    []string{"--xpath", "//title", "--new-value", "x"},
			wantErr: false,
		},
		{
			name:    "Missing xpath",
			args:    []string{"--single-file", "index.html", "--new-value", "x"},
			wantErr: true,
		},
		{
			name:    "Empty xpath",
			args:    []string{"--xpath=", "--new-value", "x"},
			wantErr: true,
		},
		{
			name:    "Missing new value",
			args:    []string{"--single-file", "index.html", "--xpath", "//title"},
			wantErr: true,
		},
		{
			name:    "Unexpected positional",
			args:    []string{"--xpath", "//title", "--new-value", "x", "extra"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validate(t, &replaceValueCmd{}, tt.args); (err != nil) != tt.wantErr {
				t.Errorf("ValidateArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAppendVersionCmd_ValidateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "Single file",
			args:    []string{"--single-file", "index.html"},
			wantErr: false,
		},
		{
			name:    "Pattern and root",
			args:    []string{"--file-pattern", "*.html", "--root-directory", "dist"},
			wantErr: false,
		},
		{
			name:    "No args",
			args:    []string{},
			wantErr: false,
		},
		{
			name:    "Unexpected positional",
			args:    []string{"index.html"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validate(t, &AppendVersionCommand{}, tt.args); (err != nil) != tt.wantErr {
				t.Errorf("ValidateArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInlineResourcesCmd_ValidateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "Comma separated patterns",
			args:    []string{"--single-file", "index.html", "--resource-patterns", "*.css,*.js"},
			wantErr: false,
		},
		{
			name:    "Patterns as trailing arguments",
			args:    []string{"--single-file", "index.html", "--resource-patterns", "*.css", "*.js", "*.png"},
			wantErr: false,
		},
		{
			name:    "Missing patterns",
			args:    []string{"--single-file", "index.html"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validate(t, &InlineResourcesCommand{}, tt.args); (err != nil) != tt.wantErr {
				t.Errorf("ValidateArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
