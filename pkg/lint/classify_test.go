package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKinds(t *testing.T) {
	tests := []struct {
		name string
		line string
		want LineKind
	}{
		{"config", "config TEST", KindConfig},
		{"config indented", "  config TEST", KindConfig},
		{"menuconfig", "menuconfig TEST", KindMenuConfig},
		{"menu", `menu "Test"`, KindMenu},
		{"endmenu", "endmenu", KindEndMenu},
		{"choice", "choice", KindChoice},
		{"endchoice", "endchoice", KindEndChoice},
		{"if", "if FOO", KindIf},
		{"endif", "endif", KindEndIf},
		{"source", `source "path"`, KindSource},
		{"comment directive", `comment "test"`, KindCommentDirective},
		{"help", "help", KindHelp},
		{"help indented", "\thelp", KindHelp},
		{"bool", "\tbool \"Test\"", KindOption},
		{"tristate", "\ttristate \"Test\"", KindOption},
		{"string", "\tstring \"Text\"", KindOption},
		{"int", "\tint \"Value\"", KindOption},
		{"hex", "\thex \"Value\"", KindOption},
		{"def_bool", "\tdef_bool y", KindOption},
		{"def_tristate", "\tdef_tristate y", KindOption},
		{"prompt", "\tprompt \"Text\"", KindOption},
		{"default", "\tdefault y", KindOption},
		{"depends on", "\tdepends on FOO", KindOption},
		{"select", "\tselect FOO", KindOption},
		{"imply", "\timply BAR", KindOption},
		{"range", "\trange 0 100", KindOption},
		{"option directive", "\toption env=\"VAR\"", KindOption},
		{"hash comment", "# Comment", KindComment},
		{"indented comment", "  # Comment", KindComment},
		{"bare hash", "#", KindComment},
		{"blank", "", KindBlank},
		{"whitespace only", "   ", KindBlank},
		{"free text", "some random text", KindOther},
		{"keyword prefix is not a token", "configuration FOO", KindOther},
		{"default prefix is not def_bool", "\tdefaults are fine", KindOther},
		{"iffy word", "iffy text", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line).Kind)
		})
	}
}

func TestClassifyIndent(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantTabs   int
		wantSpaces int
		wantMixed  bool
	}{
		{"no indent", "config TEST", 0, 0, false},
		{"one tab", "\tbool \"Test\"", 1, 0, false},
		{"four spaces", "    bool \"Test\"", 0, 4, false},
		{"tab then spaces", "\t  bool \"Test\"", 1, 2, true},
		{"spaces then tab", "  \tbool \"Test\"", 1, 2, true},
		{"whitespace only line", "\t ", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Classify(tt.line).Indent
			assert.Equal(t, tt.wantTabs, in.Tabs, "tabs")
			assert.Equal(t, tt.wantSpaces, in.Spaces, "spaces")
			assert.Equal(t, tt.wantMixed, in.Mixed, "mixed")
			assert.Equal(t, tt.wantTabs+tt.wantSpaces, in.Width(), "width")
		})
	}
}

func TestDeclarationName(t *testing.T) {
	assert.Equal(t, "TEST", DeclarationName("config TEST"))
	assert.Equal(t, "NET_IPV4", DeclarationName("menuconfig NET_IPV4 trailing"))
	assert.Equal(t, "", DeclarationName("config"))
	assert.Equal(t, "", DeclarationName(""))
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, KindMenu.IsBlockOpen())
	assert.True(t, KindChoice.IsBlockOpen())
	assert.True(t, KindIf.IsBlockOpen())
	assert.False(t, KindConfig.IsBlockOpen())

	assert.True(t, KindEndMenu.IsBlockClose())
	assert.True(t, KindEndChoice.IsBlockClose())
	assert.True(t, KindEndIf.IsBlockClose())
	assert.False(t, KindHelp.IsBlockClose())

	assert.True(t, KindConfig.IsDeclaration())
	assert.True(t, KindMenuConfig.IsDeclaration())
	assert.False(t, KindOption.IsDeclaration())
}
