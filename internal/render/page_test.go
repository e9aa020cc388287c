package render_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-board/internal/model"
	"activity-board/internal/render"
	"activity-board/internal/testutil/htmltest"
)

var sampleCatalog = model.Catalog{
	{
		Name:            "Swimming Club",
		Description:     "Practice swimming techniques",
		Schedule:        "Mondays and Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 10,
		Participants:    []string{},
	},
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	{
		Name:            "Overbooked",
		Description:     "Server let too many in",
		Schedule:        "Never",
		MaxParticipants: 1,
		Participants:    []string{"a@x.edu", "b@x.edu"},
	},
}

func renderPage(t *testing.T, v model.BoardView) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, render.RenderPage(&buf, v))
	return buf.String()
}

func TestRenderPage_SelectorOptions(t *testing.T) {
	doc := htmltest.Parse(t, renderPage(t, model.BoardView{Activities: sampleCatalog}))

	options := htmltest.ByTag(htmltest.ByID(t, doc, "activity"), "option")
	require.Len(t, options, len(sampleCatalog)+1)

	assert.Equal(t, "", htmltest.Attr(options[0], "value"))
	assert.Equal(t, "-- Select an activity --", htmltest.Text(options[0]))
	for i, a := range sampleCatalog {
		assert.Equal(t, a.Name, htmltest.Attr(options[i+1], "value"))
		assert.Equal(t, a.Name, htmltest.Text(options[i+1]))
	}
}

func TestRenderPage_Cards(t *testing.T) {
	doc := htmltest.Parse(t, renderPage(t, model.BoardView{Activities: sampleCatalog}))

	cards := htmltest.ByClass(htmltest.ByID(t, doc, "activities-list"), "activity-card")
	require.Len(t, cards, len(sampleCatalog))

	for i, a := range sampleCatalog {
		card := cards[i]
		assert.Equal(t, a.Name, htmltest.Text(htmltest.ByTag(card, "h4")[0]))
		assert.Contains(t, htmltest.Text(card), fmt.Sprintf("Availability: %d spots left", a.SpotsLeft()))
		assert.Contains(t, htmltest.Text(card), "Schedule: "+a.Schedule)

		buttons := htmltest.ByClass(card, "remove-participant")
		placeholders := htmltest.ByClass(card, "no-participants")

		if len(a.Participants) == 0 {
			assert.Empty(t, buttons)
			require.Len(t, placeholders, 1)
			assert.Equal(t, "No one has signed up yet.", htmltest.Text(placeholders[0]))
			continue
		}

		assert.Empty(t, placeholders)
		require.Len(t, buttons, len(a.Participants))
		for j, email := range a.Participants {
			assert.Equal(t, a.Name, htmltest.Attr(buttons[j], "data-activity"))
			assert.Equal(t, email, htmltest.Attr(buttons[j], "data-email"))

			activity, gotEmail, err := render.ParseRemoveTarget(htmltest.Attr(buttons[j], "value"))
			require.NoError(t, err)
			assert.Equal(t, a.Name, activity)
			assert.Equal(t, email, gotEmail)
		}
	}

	assert.Contains(t, htmltest.Text(cards[2]), "Availability: -1 spots left")
}

func TestRenderPage_LoadFailed(t *testing.T) {
	doc := htmltest.Parse(t, renderPage(t, model.BoardView{Activities: sampleCatalog[:1], LoadFailed: true}))

	list := htmltest.ByID(t, doc, "activities-list")
	assert.Equal(t, render.FailureText, htmltest.Text(list))
	assert.Empty(t, htmltest.ByClass(list, "activity-card"))

	// Список в форме остаётся от прошлой успешной загрузки.
	assert.Len(t, htmltest.ByTag(htmltest.ByID(t, doc, "activity"), "option"), 2)
}

func TestRenderPage_Banner(t *testing.T) {
	tests := []struct {
		name      string
		banner    model.Banner
		wantClass string
		wantText  string
		wantMS    string
		wantStyle string
	}{
		{
			name:      "hidden",
			banner:    model.Banner{Kind: model.BannerHidden},
			wantClass: "hidden",
			wantMS:    "0",
			wantStyle: "animation-delay: 0ms",
		},
		{
			name:      "success",
			banner:    model.Banner{Kind: model.BannerSuccess, Text: "Signed up X", Remaining: 5 * time.Second},
			wantClass: "success",
			wantText:  "Signed up X",
			wantMS:    "5000",
			wantStyle: "animation-delay: 5000ms",
		},
		{
			name:      "error",
			banner:    model.Banner{Kind: model.BannerError, Text: "Activity full", Remaining: 1500 * time.Millisecond},
			wantClass: "error",
			wantText:  "Activity full",
			wantMS:    "1500",
			wantStyle: "animation-delay: 1500ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := htmltest.Parse(t, renderPage(t, model.BoardView{Banner: tt.banner}))
			msg := htmltest.ByID(t, doc, "message")
			assert.Equal(t, tt.wantClass, htmltest.Attr(msg, "class"))
			assert.Equal(t, tt.wantText, htmltest.Text(msg))
			assert.Equal(t, tt.wantMS, htmltest.Attr(msg, "data-hide-after-ms"))
			// Скрывает баннер именно задержка анимации, а не data-атрибут.
			assert.Equal(t, tt.wantStyle, htmltest.Attr(msg, "style"))
		})
	}
}

func TestRenderPage_FormValues(t *testing.T) {
	v := model.BoardView{
		Activities: sampleCatalog,
		Form:       model.SignupForm{Email: "emma@mergington.edu", Activity: "Chess Club"},
	}
	doc := htmltest.Parse(t, renderPage(t, v))

	assert.Equal(t, "emma@mergington.edu", htmltest.Attr(htmltest.ByID(t, doc, "email"), "value"))

	var selected []string
	for _, o := range htmltest.ByTag(htmltest.ByID(t, doc, "activity"), "option") {
		if htmltest.HasAttr(o, "selected") {
			selected = append(selected, htmltest.Attr(o, "value"))
		}
	}
	assert.Equal(t, []string{"Chess Club"}, selected)
}

func TestRenderPage_EscapesServerText(t *testing.T) {
	v := model.BoardView{Activities: model.Catalog{{
		Name:            `<script>alert("x")</script>`,
		Description:     `<img src=x onerror=alert(1)>`,
		MaxParticipants: 2,
		Participants:    []string{`"><b>@x.edu`},
	}}}
	page := renderPage(t, v)

	assert.NotContains(t, page, "<script>alert")
	assert.NotContains(t, page, "<img src=x")

	doc := htmltest.Parse(t, page)
	assert.Empty(t, htmltest.ByTag(doc, "script"))
	assert.Empty(t, htmltest.ByTag(doc, "img"))

	buttons := htmltest.ByClass(doc, "remove-participant")
	require.Len(t, buttons, 1)
	assert.Equal(t, `"><b>@x.edu`, htmltest.Attr(buttons[0], "data-email"))
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	v := model.BoardView{
		Activities: sampleCatalog[:2],
		Banner:     model.Banner{Kind: model.BannerSuccess, Text: "Signed up"},
	}
	require.NoError(t, render.RenderText(&buf, v))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[success] Signed up\n"))
	assert.Contains(t, out, "Swimming Club\n")
	assert.Contains(t, out, "No one has signed up yet.")
	assert.Contains(t, out, "10 spots left")
	assert.Contains(t, out, "- michael@mergington.edu")
	assert.Less(t, strings.Index(out, "Swimming Club"), strings.Index(out, "Chess Club"))

	buf.Reset()
	require.NoError(t, render.RenderText(&buf, model.BoardView{LoadFailed: true}))
	assert.Equal(t, render.FailureText+"\n", buf.String())
}
