package handlers

import (
	"net/http"
)

// PagesHandler serves the static informational pages as view models; the
// front end owns the markup.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

type pageResponse struct {
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
}

func (h *PagesHandler) HandleAbout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, pageResponse{
		Title: "About Glass Strategies",
		Sections: []string{
			"Glass Strategies supplies impact-resistant window systems to properties in hurricane zones.",
			"Our certified systems meet Miami-Dade standards and protect over 500 properties along the Gulf and Atlantic coasts.",
			"Storm Command is the internal tool our sales team uses to target coastal markets and track outreach.",
		},
	})
}

func (h *PagesHandler) HandleStrategy(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, pageResponse{
		Title: "Sales Strategy",
		Sections: []string{
			"Target the 50 highest-risk coastal cities and the 50 property categories most exposed to storm damage.",
			"Lead with hurricane risk and code compliance; follow up before the start of each hurricane season.",
			"Stand up a dedicated companion site per market once outreach volume justifies it.",
		},
	})
}

func (h *PagesHandler) HandlePrompts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, pageResponse{
		Title: "Outreach Prompts",
		Sections: []string{
			"Hurricane Protection for {company}: the standard cold-outreach pitch generated by the email tool.",
			"Reference the prospect's city and category so the risk framing is specific, not generic.",
			"Close with a consultation ask tied to the next hurricane season.",
		},
	})
}
