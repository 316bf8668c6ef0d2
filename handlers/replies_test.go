package handlers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messenger-bot/models"
	"messenger-bot/services"
)

// Every builder output must serialize into a valid send body: at most one of
// text, attachment and sender_action populated.
func TestBuilderOutputsSatisfySendInvariant(t *testing.T) {
	employer := services.Employer{Name: "Initech", SquareLogo: "https://logos.example.com/initech.png"}
	employer.FeaturedReview.AttributionURL = "https://reviews.example.com/initech"

	builders := map[string]models.Outbound{
		"text":            textReply("hello"),
		"image":           mediaReply(models.MediaImage, testServerURL+"/assets/rift.png"),
		"gif":             mediaReply(models.MediaImage, testServerURL+"/assets/gunter.gif"),
		"audio":           mediaReply(models.MediaAudio, testServerURL+"/assets/sample.mp3"),
		"video":           mediaReply(models.MediaVideo, testServerURL+"/assets/allofus480.mov"),
		"file":            mediaReply(models.MediaFile, testServerURL+"/assets/test.txt"),
		"button":          buttonReply(),
		"generic":         genericReply(testServerURL),
		"receipt":         receiptReply(testServerURL),
		"quick reply":     quickReplyPrompt(),
		"jobs":            jobsTemplate(" javascript"),
		"events":          eventsTemplate(" iOS"),
		"company":         companyTemplate(" initech", employer),
		"account linking": accountLinkingReply(testServerURL),
		"welcome":         welcomeReply(),
		"mark seen":       models.ActionMarkSeen,
	}

	for name, out := range builders {
		req, err := models.NewSendRequest("USER_ID", out)
		require.NoError(t, err, "builder %q", name)

		data, err := json.Marshal(req)
		require.NoError(t, err, "builder %q", name)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))

		shapes := 0
		if message, ok := decoded["message"].(map[string]any); ok {
			if _, ok := message["text"]; ok {
				shapes++
			}
			if _, ok := message["attachment"]; ok {
				shapes++
			}
		}
		if _, ok := decoded["sender_action"]; ok {
			shapes++
		}
		assert.Equal(t, 1, shapes, "builder %q must populate exactly one shape", name)
	}
}

func TestJobsTemplateInterpolatesKeywordLiterally(t *testing.T) {
	tmpl := jobsTemplate(" javascript")

	require.Len(t, tmpl.Elements, 3)
	assert.Equal(t, "https://www.linkedin.com/jobs/search?keywords= javascript", tmpl.Elements[0].ItemURL)
	assert.Equal(t, "https://www.indeed.ca/jobs?q= javascript&l=toronto", tmpl.Elements[1].ItemURL)
	assert.Equal(t, "https://toronto.craigslist.ca/search/jjj?query= javascript", tmpl.Elements[2].ItemURL)

	for _, e := range tmpl.Elements {
		require.Len(t, e.Buttons, 2)
		_, isURL := e.Buttons[0].(models.URLButton)
		_, isShare := e.Buttons[1].(models.ShareButton)
		assert.True(t, isURL)
		assert.True(t, isShare)
	}
}

func TestEventsTemplateProviders(t *testing.T) {
	tmpl := eventsTemplate(" iOS")

	require.Len(t, tmpl.Elements, 3)
	assert.Equal(t, "Meetup", tmpl.Elements[0].Title)
	assert.Equal(t, "Eventbrite", tmpl.Elements[1].Title)
	assert.Equal(t, "Facebook", tmpl.Elements[2].Title)
	assert.Contains(t, tmpl.Elements[1].ItemURL, "/canada--toronto/ iOS/")
}

func TestCompanyTemplateUsesEmployerRecord(t *testing.T) {
	employer := services.Employer{Name: "Initech", SquareLogo: "https://logos.example.com/initech.png"}
	employer.FeaturedReview.AttributionURL = "https://reviews.example.com/initech"

	tmpl := companyTemplate(" initech", employer)

	require.Len(t, tmpl.Elements, 1)
	element := tmpl.Elements[0]
	assert.Equal(t, "Initech", element.Title)
	assert.Equal(t, "https://reviews.example.com/initech", element.ItemURL)
	assert.Equal(t, "https://logos.example.com/initech.png", element.ImageURL)
	assert.Contains(t, element.Subtitle, "initech")
}

func TestReceiptOrderNumbersAreUnique(t *testing.T) {
	first := receiptReply(testServerURL)
	second := receiptReply(testServerURL)

	assert.True(t, strings.HasPrefix(first.OrderNumber, "order-"))
	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)
	require.Len(t, first.Elements, 2)
	assert.Equal(t, 698.99, first.Summary.Subtotal)
}

func TestQuickReplyPromptOptions(t *testing.T) {
	prompt := quickReplyPrompt()

	require.Len(t, prompt.QuickReplies, 3)
	for _, qr := range prompt.QuickReplies {
		assert.Equal(t, "text", qr.ContentType)
		assert.NotEmpty(t, qr.Payload)
	}
}

func TestAccountLinkingReplyPointsAtAuthorize(t *testing.T) {
	reply := accountLinkingReply(testServerURL)

	require.Len(t, reply.Buttons, 1)
	link, ok := reply.Buttons[0].(models.AccountLinkButton)
	require.True(t, ok)
	assert.Equal(t, testServerURL+"/authorize", link.URL)
}

func TestWelcomeReplyButtons(t *testing.T) {
	reply := welcomeReply()

	require.Len(t, reply.Buttons, 3)
	payloads := make([]string, 0, 3)
	for _, b := range reply.Buttons {
		pb, ok := b.(models.PostbackButton)
		require.True(t, ok)
		payloads = append(payloads, pb.Payload)
	}
	assert.Equal(t, []string{"jobs", "events", "companies"}, payloads)
}
