package profile

import (
	"errors"
	"fmt"
	"slices"

	"data-casts/internal/diagnostic"
	"data-casts/internal/registry"
	"data-casts/rule"
)

// Validate checks every profile in f against the units known to r. Unit
// parameters are checked by building the unit.
func Validate(f *File, r *registry.Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "profile file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddWarning(diagnostic.CodeUnknownVersion, fmt.Sprintf("profile version %q, expected %q", f.Version, CurrentVersion), "", "")
	}

	seenProfiles := map[string]struct{}{}

	for i := range f.Profiles {
		p := &f.Profiles[i]

		if p.Name == "" {
			res.AddError(diagnostic.CodeEmptyName, fmt.Sprintf("profile #%d has no name", i+1), "", "")
		} else if _, ok := seenProfiles[p.Name]; ok {
			res.AddError(diagnostic.CodeDuplicateName, fmt.Sprintf("duplicate profile %q", p.Name), p.Name, "")
		}

		seenProfiles[p.Name] = struct{}{}

		res.Merge(validateProfile(p, r))
	}

	return res
}

func validateProfile(p *Profile, r *registry.Registry) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	if len(p.Fields) == 0 && len(p.Pipes) == 0 {
		res.AddWarning(diagnostic.CodeEmptyProfile, "profile binds nothing", p.Name, "")
	}

	for _, ref := range p.Pipes {
		_, err := r.PipeSpec(ref.Spec())
		addUnitError(&res, err, p.Name, "")
	}

	names := p.Pipes.Names()
	for i, name := range names {
		if slices.Index(names, name) < i {
			res.AddWarning(diagnostic.CodeDuplicatePipe, fmt.Sprintf("pipe %q runs more than once", name), p.Name, "")
		}
	}

	seenFields := map[string]struct{}{}

	for i := range p.Fields {
		field := &p.Fields[i]

		if field.Name == "" {
			res.AddError(diagnostic.CodeEmptyName, fmt.Sprintf("field #%d has no name", i+1), p.Name, "")
			continue
		}

		if _, ok := seenFields[field.Name]; ok {
			res.AddError(diagnostic.CodeDuplicateField, "field declared more than once", p.Name, field.Name)
			continue
		}

		seenFields[field.Name] = struct{}{}

		if len(field.Cast) == 0 && len(field.Transform) == 0 && field.Rules.IsEmpty() {
			res.AddWarning(diagnostic.CodeEmptyField, "field binds nothing", p.Name, field.Name)
			continue
		}

		for _, ref := range field.Cast {
			_, err := r.CastSpec(ref.Spec())
			addUnitError(&res, err, p.Name, field.Name)
		}

		for _, ref := range field.Transform {
			_, err := r.TransformerSpec(ref.Spec())
			addUnitError(&res, err, p.Name, field.Name)
		}

		var rules rule.Set

		for _, text := range field.Rules {
			set, err := rule.ParseSet(text)
			if err != nil {
				res.AddError(diagnostic.CodeInvalidRule, err.Error(), p.Name, field.Name)
				continue
			}

			rules = append(rules, set...)
		}

		if rules.Has(rule.KeywordLowercase) && rules.Has(rule.KeywordUppercase) {
			res.AddWarning(diagnostic.CodeConflictingRules, "field requires both lowercase and uppercase", p.Name, field.Name)
		}
	}

	return res
}

func addUnitError(res *diagnostic.Diagnostics, err error, profile, field string) {
	if err == nil {
		return
	}

	var unknown *registry.UnknownError
	if errors.As(err, &unknown) {
		res.AddError(diagnostic.CodeUnknownUnit,
			fmt.Sprintf("unknown %s %q", unknown.Kind, unknown.Name), profile, field, unknown.Suggestions...)

		return
	}

	res.AddError(diagnostic.CodeInvalidUnit, err.Error(), profile, field)
}
