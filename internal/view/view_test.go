package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/roster/backend/internal/model/person"
)

func TestRenderPageEmbedsRecordsAsJSON(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.RenderPage(&buf, PageData{Records: person.Seed()})
	require.NoError(t, err)

	body := buf.String()
	assert.Contains(t, body, `id="roster-data"`)
	assert.Contains(t, body, `"nome":"Maria Silva"`)
	assert.Contains(t, body, `"idade":50`)
	assert.NotContains(t, body, `id="notice"`)
}

func TestRenderPageEscapesScriptBreakout(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	records := []person.Person{{ID: 1, Name: "</script><script>alert(1)</script>", Age: 3}}
	require.NoError(t, r.RenderPage(&buf, PageData{Records: records}))

	assert.NotContains(t, buf.String(), "</script><script>alert(1)")
}

func TestRenderPageEmptyRosterIsArray(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(&buf, PageData{}))
	assert.Contains(t, buf.String(), `id="roster-data">[]</script>`)
}

func TestRenderPageNotice(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	notice, ok := NoticeFor(StatusInvalid)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, r.RenderPage(&buf, PageData{Notice: &notice}))

	body := buf.String()
	assert.Contains(t, body, `data-kind="error"`)
	assert.Contains(t, body, "Informe um nome e uma idade maior que zero.")
}

func TestNoticeForUnknownStatus(t *testing.T) {
	_, ok := NoticeFor("bogus")
	assert.False(t, ok)
}
