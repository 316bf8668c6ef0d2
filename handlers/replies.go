package handlers

import (
	"github.com/google/uuid"

	"messenger-bot/models"
	"messenger-bot/services"
)

const developerMetadata = "DEVELOPER_DEFINED_METADATA"

const (
	jobsPromptIntro   = "Great! I can help you look for jobs in and about the internets."
	jobsPromptExample = `Enter keywords for the type of jobs you are interested in. For example: for jobs focused on JavaScript, reply "jobs javascript".`

	eventsPromptIntro = "Great! I can help you look for events around your location."

	companiesPromptIntro   = "Great! I can help you lookup information about companies."
	companiesPromptExample = `Enter company name, so I can pull up some basic Glassdoor reviews for you to look through. For Example reply "company google" to look up glassdoor reviews for Google.`
)

func textReply(text string) models.Text {
	return models.Text{Text: text, Metadata: developerMetadata}
}

func mediaReply(kind models.MediaType, url string) models.Media {
	return models.Media{Type: kind, URL: url}
}

func buttonReply() models.ButtonTemplate {
	return models.ButtonTemplate{
		Text: "This is test text",
		Buttons: []models.Button{
			models.URLButton{Title: "Open Web URL", URL: "https://www.oculus.com/en-us/rift/"},
			models.PostbackButton{Title: "Trigger Postback", Payload: "DEVELOPER_DEFINED_PAYLOAD"},
			models.CallButton{Title: "Call Phone Number", Phone: "+16505551234"},
		},
	}
}

func genericReply(serverURL string) models.GenericTemplate {
	return models.GenericTemplate{
		Elements: []models.Element{
			{
				Title:    "rift",
				Subtitle: "Next-generation virtual reality",
				ItemURL:  "https://www.oculus.com/en-us/rift/",
				ImageURL: serverURL + "/assets/rift.png",
				Buttons: []models.Button{
					models.URLButton{Title: "Open Web URL", URL: "https://www.oculus.com/en-us/rift/"},
					models.PostbackButton{Title: "Call Postback", Payload: "Payload for first bubble"},
				},
			},
			{
				Title:    "touch",
				Subtitle: "Your Hands, Now in VR",
				ItemURL:  "https://www.oculus.com/en-us/touch/",
				ImageURL: serverURL + "/assets/touch.png",
				Buttons: []models.Button{
					models.URLButton{Title: "Open Web URL", URL: "https://www.oculus.com/en-us/touch/"},
					models.PostbackButton{Title: "Call Postback", Payload: "Payload for second bubble"},
				},
			},
		},
	}
}

// jobsTemplate builds the three fixed job board cards for a keyword. The
// keyword is interpolated literally, as received off the wire.
func jobsTemplate(keyword string) models.GenericTemplate {
	return models.GenericTemplate{
		Elements: []models.Element{
			{
				Title:    "LinkedIn",
				Subtitle: "LinkedIn jobs for " + keyword,
				ItemURL:  "https://www.linkedin.com/jobs/search?keywords=" + keyword,
				ImageURL: "https://upload.wikimedia.org/wikipedia/commons/c/ca/LinkedIn_logo_initials.png",
				Buttons: []models.Button{
					models.URLButton{Title: "Open Web URL", URL: "https://www.linkedin.com/jobs/search?keywords=" + keyword},
					models.ShareButton{},
				},
			},
			{
				Title:    "Indeed",
				Subtitle: "Indeed jobs for " + keyword,
				ItemURL:  "https://www.indeed.ca/jobs?q=" + keyword + "&l=toronto",
				ImageURL: "http://deltafonts.com/wp-content/uploads/Indeed.jpg",
				Buttons: []models.Button{
					models.URLButton{Title: "Open Web URL", URL: "https://www.indeed.ca/jobs?q=" + keyword + "&l=toronto"},
					models.ShareButton{},
				},
			},
			{
				Title:    "Craigslist",
				Subtitle: "Craigslist jobs for" + keyword,
				ItemURL:  "https://toronto.craigslist.ca/search/jjj?query=" + keyword,
				ImageURL: "https://media.glassdoor.com/sqll/32819/craigslist-squarelogo-1470847108861.png",
				Buttons: []models.Button{
					models.URLButton{Title: "Open Web URL", URL: "https://toronto.craigslist.ca/search/jjj?query=" + keyword},
					models.ShareButton{},
				},
			},
		},
	}
}

// eventsTemplate builds the three fixed event listing cards for a keyword.
func eventsTemplate(keyword string) models.GenericTemplate {
	return models.GenericTemplate{
		Elements: []models.Element{
			{
				Title:    "Meetup",
				Subtitle: "Meetup groups for " + keyword,
				ItemURL:  "http://www.meetup.com/find/?allMeetups=false&keywords=" + keyword,
				ImageURL: "http://img2.meetupstatic.com/img/041003812446967856280/logo/svg/logo--script.svg",
				Buttons: []models.Button{
					models.URLButton{Title: "Open Web URL", URL: "http://www.meetup.com/find/?allMeetups=false&keywords=" + keyword},
					models.ShareButton{},
				},
			},
			{
				Title:    "Eventbrite",
				Subtitle: "Eventbrite events for " + keyword,
				ItemURL:  "https://www.eventbrite.com/d/canada--toronto/" + keyword + "/?crt=regular&sort=best",
				ImageURL: "https://cdn.evbstatic.com/s3-build/perm_001/48d2e1/django/images/logos/eb_logo_white_1200x1200.png",
				Buttons: []models.Button{
					models.URLButton{Title: "Open Web URL", URL: "https://www.eventbrite.com/d/canada--toronto/" + keyword + "/?crt=regular&sort=best"},
					models.ShareButton{},
				},
			},
			{
				Title:    "Facebook",
				Subtitle: "Facebook events for" + keyword,
				ItemURL:  "https://graph.facebook.com/search?q=" + keyword + "&type=event",
				ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c2/F_icon.svg/2000px-F_icon.svg.png",
				Buttons: []models.Button{
					models.URLButton{Title: "Open Web URL", URL: "https://graph.facebook.com/search?q=" + keyword + "&type=event"},
					models.ShareButton{},
				},
			},
		},
	}
}

// companyTemplate builds a single card from the top employer record.
func companyTemplate(keyword string, employer services.Employer) models.GenericTemplate {
	return models.GenericTemplate{
		Elements: []models.Element{
			{
				Title:    employer.Name,
				Subtitle: "Glassdoor reviews for" + keyword,
				ItemURL:  employer.FeaturedReview.AttributionURL,
				ImageURL: employer.SquareLogo,
				Buttons: []models.Button{
					models.URLButton{Title: "GlassDoor Review", URL: employer.FeaturedReview.AttributionURL},
					models.ShareButton{},
				},
			},
		},
	}
}

func receiptReply(serverURL string) models.ReceiptTemplate {
	// The API requires a unique order number per receipt
	return models.ReceiptTemplate{
		RecipientName: "Peter Chang",
		OrderNumber:   "order-" + uuid.NewString(),
		Currency:      "USD",
		PaymentMethod: "Visa 1234",
		Timestamp:     "1428444852",
		Elements: []models.LineItem{
			{
				Title:    "Oculus Rift",
				Subtitle: "Includes: headset, sensor, remote",
				Quantity: 1,
				Price:    599.00,
				Currency: "USD",
				ImageURL: serverURL + "/assets/riftsq.png",
			},
			{
				Title:    "Samsung Gear VR",
				Subtitle: "Frost White",
				Quantity: 1,
				Price:    99.99,
				Currency: "USD",
				ImageURL: serverURL + "/assets/gearvrsq.png",
			},
		},
		Address: models.Address{
			Street1:    "1 Hacker Way",
			Street2:    "",
			City:       "Menlo Park",
			PostalCode: "94025",
			State:      "CA",
			Country:    "US",
		},
		Summary: models.Summary{
			Subtotal:     698.99,
			ShippingCost: 20.00,
			TotalTax:     57.67,
			TotalCost:    626.66,
		},
		Adjustments: []models.Adjustment{
			{Name: "New Customer Discount", Amount: -50},
			{Name: "$100 Off Coupon", Amount: -100},
		},
	}
}

func quickReplyPrompt() models.Text {
	return models.Text{
		Text: "What's your favorite movie genre?",
		QuickReplies: []models.QuickReplyOption{
			{ContentType: "text", Title: "Action", Payload: "DEVELOPER_DEFINED_PAYLOAD_FOR_PICKING_ACTION"},
			{ContentType: "text", Title: "Comedy", Payload: "DEVELOPER_DEFINED_PAYLOAD_FOR_PICKING_COMEDY"},
			{ContentType: "text", Title: "Drama", Payload: "DEVELOPER_DEFINED_PAYLOAD_FOR_PICKING_DRAMA"},
		},
	}
}

func accountLinkingReply(serverURL string) models.ButtonTemplate {
	return models.ButtonTemplate{
		Text: "Welcome. Link your account.",
		Buttons: []models.Button{
			models.AccountLinkButton{URL: serverURL + "/authorize"},
		},
	}
}

func welcomeReply() models.ButtonTemplate {
	return models.ButtonTemplate{
		Text: "Hi! My name is EMO. I am a chatbot for EmployMe - I'm here to help you with your career. Please select from any of the options below to get started.",
		Buttons: []models.Button{
			models.PostbackButton{Title: "Jobs", Payload: "jobs"},
			models.PostbackButton{Title: "Events", Payload: "events"},
			models.PostbackButton{Title: "Companies", Payload: "companies"},
		},
	}
}
