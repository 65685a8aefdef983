package config

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"ccswitch/config/models"
	"ccswitch/config/validation"
)

func TestParseImportMode(t *testing.T) {
	for _, s := range []string{"skip", "overwrite", "rename"} {
		mode, err := ParseImportMode(s)
		if err != nil {
			t.Errorf("ParseImportMode(%q) failed: %v", s, err)
		}
		if string(mode) != s {
			t.Errorf("ParseImportMode(%q) = %q", s, mode)
		}
	}
	if _, err := ParseImportMode("merge"); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}

func TestExportAll(t *testing.T) {
	cm := newTestManager(t)
	mustCreate(t, cm, "work", "personal")

	export, err := cm.Export(nil, false)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if len(export.Profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(export.Profiles))
	}
	if export.Profiles[0].Name != "work" || export.Profiles[1].Name != "personal" {
		t.Errorf("export should keep insertion order: %v", export.Profiles)
	}
	if export.Sanitized {
		t.Errorf("plain export should not be marked sanitized")
	}
	if export.Version != models.ExportVersion {
		t.Errorf("unexpected export version %q", export.Version)
	}
}

func TestExportSelection(t *testing.T) {
	cm := newTestManager(t)
	mustCreate(t, cm, "work", "personal")

	export, err := cm.Export([]string{"personal"}, false)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if len(export.Profiles) != 1 || export.Profiles[0].Name != "personal" {
		t.Errorf("unexpected selection: %v", export.Profiles)
	}
}

func TestExportUnknownName(t *testing.T) {
	cm := newTestManager(t)
	mustCreate(t, cm, "work")

	if _, err := cm.Export([]string{"work", "missing"}, false); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestExportSanitizeLeavesStoreIntact(t *testing.T) {
	cm := newTestManager(t)
	mustCreate(t, cm, "work")

	export, err := cm.Export(nil, true)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if export.Profiles[0].APIKey != models.RedactedAPIKey {
		t.Errorf("sanitized export kept the key: %q", export.Profiles[0].APIKey)
	}
	if !export.Sanitized {
		t.Errorf("sanitized export must be marked as such")
	}

	stored, err := cm.Get("work")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.APIKey != "sk-work" {
		t.Errorf("sanitizing an export modified the stored profile")
	}
}

func TestImportIntoEmptyStore(t *testing.T) {
	source := newTestManager(t)
	mustCreate(t, source, "work", "personal")
	export, err := source.Export(nil, false)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	target := newTestManager(t)
	result, err := target.Import(export, ImportSkip)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(result.Imported) != 2 {
		t.Errorf("expected 2 imported, got %v", result)
	}

	list, _ := target.List()
	if len(list) != 2 {
		t.Errorf("expected 2 profiles after import, got %d", len(list))
	}
}

func TestImportSkipKeepsExisting(t *testing.T) {
	cm := newTestManager(t)
	mustCreate(t, cm, "work")

	incoming := testProfile("work")
	incoming.APIKey = "sk-incoming"
	export := &models.ExportFile{Profiles: []models.Profile{incoming}}

	result, err := cm.Import(export, ImportSkip)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(result.Skipped) != 1 {
		t.Errorf("expected 1 skipped, got %v", result)
	}

	got, _ := cm.Get("work")
	if got.APIKey != "sk-work" {
		t.Errorf("skip mode replaced the existing profile")
	}
}

func TestImportOverwriteReplacesExisting(t *testing.T) {
	cm := newTestManager(t)
	mustCreate(t, cm, "work")

	incoming := testProfile("work")
	incoming.APIKey = "sk-incoming"
	export := &models.ExportFile{Profiles: []models.Profile{incoming}}

	result, err := cm.Import(export, ImportOverwrite)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(result.Overwritten) != 1 {
		t.Errorf("expected 1 overwritten, got %v", result)
	}

	got, _ := cm.Get("work")
	if got.APIKey != "sk-incoming" {
		t.Errorf("overwrite mode kept the old profile")
	}
}

func TestImportRenameFindsFreeName(t *testing.T) {
	cm := newTestManager(t)
	mustCreate(t, cm, "work", "work-2")

	incoming := testProfile("work")
	incoming.APIKey = "sk-incoming"
	export := &models.ExportFile{Profiles: []models.Profile{incoming}}

	result, err := cm.Import(export, ImportRename)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	renamed, ok := result.Renamed["work"]
	if !ok {
		t.Fatalf("expected a rename entry, got %v", result)
	}
	if renamed != "work-3" {
		t.Errorf("expected first free variant work-3, got %q", renamed)
	}

	got, err := cm.Get("work-3")
	if err != nil {
		t.Fatalf("renamed profile missing: %v", err)
	}
	if got.APIKey != "sk-incoming" {
		t.Errorf("renamed profile carries wrong body")
	}
	original, _ := cm.Get("work")
	if original.APIKey != "sk-work" {
		t.Errorf("rename mode modified the existing profile")
	}
}

func TestImportRenameRespectsNameLengthLimit(t *testing.T) {
	cm := newTestManager(t)

	long := strings.Repeat("a", validation.MaxNameLength)
	if err := cm.Create(testProfile(long)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	incoming := testProfile(long)
	incoming.APIKey = "sk-incoming"
	export := &models.ExportFile{Profiles: []models.Profile{incoming}}

	result, err := cm.Import(export, ImportRename)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	renamed, ok := result.Renamed[long]
	if !ok {
		t.Fatalf("expected a rename entry, got %v", result)
	}
	if len(renamed) > validation.MaxNameLength {
		t.Fatalf("generated name %q exceeds the length limit", renamed)
	}

	// The renamed profile must be fully usable afterwards.
	got, err := cm.Get(renamed)
	if err != nil {
		t.Fatalf("renamed profile missing: %v", err)
	}
	if err := cm.Update(renamed, *got); err != nil {
		t.Errorf("renamed profile fails a later update: %v", err)
	}
}

func TestImportValidationIsAllOrNothing(t *testing.T) {
	cm := newTestManager(t)
	mustCreate(t, cm, "existing")

	good := testProfile("good")
	bad := testProfile("bad")
	bad.APIKey = ""
	export := &models.ExportFile{Profiles: []models.Profile{good, bad}}

	if _, err := cm.Import(export, ImportSkip); err == nil {
		t.Fatalf("expected validation error")
	}

	// Nothing from the batch may have landed.
	list, _ := cm.List()
	if len(list) != 1 || list[0].Name != "existing" {
		t.Errorf("failed import wrote profiles: %v", list)
	}
}

// Property: a sanitized export never leaks the original key, no matter the
// key's content.
func TestSanitizedExportNeverLeaksKeysProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("serialized sanitized export omits the key", prop.ForAll(
		func(secret string) bool {
			cm := newTestManager(t)

			profile := testProfile("work")
			profile.APIKey = "sk-secret-" + secret
			if err := cm.Create(profile); err != nil {
				return false
			}

			export, err := cm.Export(nil, true)
			if err != nil {
				return false
			}
			data, err := json.Marshal(export)
			if err != nil {
				return false
			}
			return !strings.Contains(string(data), profile.APIKey)
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
