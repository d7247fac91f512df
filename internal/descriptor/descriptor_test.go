package descriptor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("valid descriptor", func(t *testing.T) {
		t.Parallel()

		d, err := NewBuilder("UI").
			Directory("Engine/UI").
			PublicIncludes("Source/Public", "Source/Classes").
			PrivateIncludes("Source/Private").
			PublicDeps("Engine", "Core", "CoreUObject").
			PrivateDeps("RHI", "RenderCore").
			PCH(PCHUseExplicitOrShared).
			Build()
		require.NoError(t, err)

		assert.Equal(t, "UI", d.Name())
		assert.Equal(t, []string{"Engine/UI/Source/Public", "Engine/UI/Source/Classes"}, d.PublicIncludePaths())
		assert.Equal(t, []string{"Engine/UI/Source/Private"}, d.PrivateIncludePaths())
		assert.Equal(t, []string{"Core", "CoreUObject", "Engine"}, d.PublicDependencies(), "dependency sets are sorted")
		assert.Equal(t, []string{"RHI", "RenderCore"}, d.PrivateDependencies())
		assert.Empty(t, d.DynamicDependencies())
		assert.Equal(t, PCHUseExplicitOrShared, d.PCHMode())
	})

	t.Run("absolute paths are not joined onto the module directory", func(t *testing.T) {
		t.Parallel()

		d := NewBuilder("Core").Directory("Engine/Core").PublicIncludes("/opt/sdk/include").MustBuild()
		assert.Equal(t, []string{"/opt/sdk/include"}, d.PublicIncludePaths())
	})

	t.Run("duplicates are collapsed", func(t *testing.T) {
		t.Parallel()

		d := NewBuilder("UI").
			PublicIncludes("inc", "./inc", "other").
			PublicDeps("Core", "Core").
			MustBuild()
		assert.Equal(t, []string{"inc", "other"}, d.PublicIncludePaths())
		assert.Equal(t, []string{"Core"}, d.PublicDependencies())
	})
}

func TestNew_InvalidDescriptor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		spec         Spec
		wantProblems []string
	}{
		{
			name:         "empty name",
			spec:         Spec{Name: "  "},
			wantProblems: []string{"module name must not be empty"},
		},
		{
			name: "self reference in every set",
			spec: Spec{
				Name:                "UI",
				PublicDependencies:  []string{"UI"},
				PrivateDependencies: []string{"UI"},
				DynamicDependencies: []string{"UI"},
			},
			wantProblems: []string{
				"module lists itself as a public dependency",
				"module lists itself as a private dependency",
				"module lists itself as a dynamic dependency",
			},
		},
		{
			name: "empty entries",
			spec: Spec{
				Name:                "UI",
				PublicIncludePaths:  []string{"ok", ""},
				PrivateIncludePaths: []string{" "},
				PrivateDependencies: []string{""},
			},
			wantProblems: []string{
				"public include path #2 is empty",
				"private include path #1 is empty",
				"private dependency #1 is empty",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			d, err := New(tc.spec)

			// --- Assert ---
			require.Nil(t, d)
			var invalid *InvalidDescriptorError
			require.True(t, errors.As(err, &invalid), "expected *InvalidDescriptorError, got %T", err)
			assert.Equal(t, tc.wantProblems, invalid.Problems)
		})
	}
}

func TestInvalidDescriptorError_Message(t *testing.T) {
	t.Parallel()

	err := &InvalidDescriptorError{Module: "UI", Source: "ui.module.hcl", Problems: []string{"a", "b"}}
	assert.Equal(t, `invalid descriptor "UI" (ui.module.hcl): a; b`, err.Error())
}

func TestDescriptor_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	d := NewBuilder("UI").PublicIncludes("inc").PublicDeps("Core").MustBuild()

	d.PublicIncludePaths()[0] = "mutated"
	d.PublicDependencies()[0] = "mutated"

	assert.Equal(t, []string{"inc"}, d.PublicIncludePaths())
	assert.Equal(t, []string{"Core"}, d.PublicDependencies())
}

func TestParsePCHMode(t *testing.T) {
	t.Parallel()

	testCases := map[string]PCHMode{
		"":                           PCHNone,
		"none":                       PCHNone,
		"UseExplicitOrSharedPCHs":    PCHUseExplicitOrShared,
		"use_explicit_or_shared_pch": PCHUseExplicitOrShared,
		"UseSharedPCHs":              PCHUseShared,
		"use_explicit_pch":           PCHUseExplicit,
	}
	for in, want := range testCases {
		got, err := ParsePCHMode(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParsePCHMode("sometimes")
	assert.ErrorContains(t, err, `unknown pch mode "sometimes"`)
}

func TestPCHMode_TextRoundTrip(t *testing.T) {
	t.Parallel()

	text, err := PCHUseShared.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "use_shared_pchs", string(text))

	var m PCHMode
	require.NoError(t, m.UnmarshalText(text))
	assert.Equal(t, PCHUseShared, m)
	assert.True(t, m.SharesPCH())
	assert.False(t, PCHUseExplicit.SharesPCH())
}
