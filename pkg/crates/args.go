// pkg/crates/args.go
package crates

import "strings"

// InstallArgs renders the cargo install invocation for one package.
// Token order is fixed: subcommand, force/locked, feature flags,
// target, source flags, then the package name as the positional
// argument.
func InstallArgs(id PackageIdentifier, opts InstallOptions, force, locked bool) []string {
	args := []string{"install"}
	if force {
		args = append(args, "--force")
	}
	if locked {
		args = append(args, "--locked")
	}
	args = opts.appendArgs(args)
	args = id.Source.appendArgs(args)
	return append(args, id.Name)
}

// BuildInstallArgs parses rawID and renders its install invocation.
// It is the one-call form of ParseIdentifier followed by InstallArgs.
func BuildInstallArgs(rawID string, opts InstallOptions, force, locked bool) ([]string, error) {
	id, err := ParseIdentifier(rawID)
	if err != nil {
		return nil, err
	}
	return InstallArgs(id, opts, force, locked), nil
}

// appendArgs emits the feature and target flags recorded for the
// install. Profile is skipped on purpose: --profile is not part of
// cargo install's stable interface. Rustc is informational only.
func (o InstallOptions) appendArgs(args []string) []string {
	if len(o.Features) > 0 {
		args = append(args, "--features", strings.Join(o.Features, ","))
	}
	if o.AllFeatures {
		args = append(args, "--all-features")
	}
	if o.NoDefaultFeatures {
		args = append(args, "--no-default-features")
	}
	return append(args, "--target", o.Target)
}

// appendArgs emits the flags selecting where cargo fetches the package
// from.
func (s PackageSource) appendArgs(args []string) []string {
	switch s.Kind {
	case SourceRegistry:
		args = append(args, "--index", s.URL)
	case SourceGit:
		args = append(args, "--git", s.URL)
		if s.Branch != "" {
			args = append(args, "--branch", s.Branch)
		}
		if s.Tag != "" {
			args = append(args, "--tag", s.Tag)
		}
	case SourcePath:
		args = append(args, "--path", s.Path)
	}
	return args
}
