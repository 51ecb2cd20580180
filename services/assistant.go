package services

import "strings"

// The assistant endpoints are deterministic keyword tables kept from the
// original product, not calls to an inference service.

// botResponses pairs a trigger keyword with a canned reply. Checked in
// order; the first keyword contained in the input wins.
var botResponses = []struct {
	keyword string
	reply   string
}{
	{"hello", "Hi there! How can I help you with CITIFIX today?"},
	{"hi", "Hello! What can I do for you?"},
	{"report", `To report an issue, sign up or log in as a citizen. From your dashboard, click "Report New Issue". You'll need to provide a description, a photo, and your location.`},
	{"issue", `You can report issues like potholes, garbage dumps, broken streetlights, and water logging. Just log in and head to the "Report Issue" page.`},
	{"reward", "You earn 10 reward points for every civic issue you report that gets successfully resolved by the authorities! You can track your points on your dashboard."},
	{"points", "Reward points are given to appreciate your contribution to making your city better. Currently, they are for recognition, but we plan to add exciting redeemable options in the future!"},
	{"signup", "You can sign up as a Citizen or an Admin from the landing page. You will need to verify your identity using our secure (mock) Aadhaar process."},
	{"register", `To register, go to the homepage and choose either "Citizen Signup" or "Admin Signup". Follow the on-screen instructions for Aadhaar verification.`},
	{"aadhaar", "Aadhaar verification is used to ensure that all reports are from genuine, verified citizens. This helps maintain the integrity of the platform. We use a mock verification for this demo."},
	{"admin", `Admins are officials from civic bodies. They can view all reported issues, assign them to relevant departments, and update the status to "Resolved".`},
	{"track", `As a citizen, you can track the status of all your submitted reports right from your personal dashboard. You'll see if they are "Pending", "In Progress", or "Resolved".`},
	{"bye", "You're welcome! Feel free to ask if you have more questions. Have a great day!"},
	{"thanks", "Happy to help! Let me know if there is anything else."},
}

const botFallback = "I'm an AI assistant focused on CITIFIX. I can answer questions about reporting issues, rewards, and using the platform. For other topics, I'm still learning!"

// BotReply returns the canned assistant response for a user message.
func BotReply(message string) string {
	lower := strings.ToLower(message)
	for _, r := range botResponses {
		if strings.Contains(lower, r.keyword) {
			return r.reply
		}
	}
	return botFallback
}

// analysisTemplates maps image/title keywords to a prewritten description.
var analysisTemplates = []struct {
	keywords    []string
	description string
}{
	{
		[]string{"pothole", "crack", "road", "pavement"},
		"AI has detected a significant pothole. The road surface is broken and uneven, posing a risk to vehicles. The issue appears to require immediate attention from the road maintenance department to prevent accidents.",
	},
	{
		[]string{"garbage", "trash", "waste", "dump"},
		"AI analysis indicates a large pile of uncollected garbage. This is creating an unsanitary environment and a potential health hazard. The waste management department should be notified for prompt cleanup.",
	},
	{
		[]string{"streetlight", "lamp", "light", "broken light"},
		"AI has identified a malfunctioning streetlight. The lamp appears to be broken or not working, which can lead to poor visibility and safety concerns during the night. This needs to be fixed by the electricity department.",
	},
	{
		[]string{"water leak", "pipe burst", "leakage"},
		"AI has detected a water leakage issue. Water appears to be flowing from a broken pipe, leading to wastage and potential waterlogging. The water supply department should investigate this urgently.",
	},
	{
		[]string{"drainage", "sewage", "clogged", "overflow"},
		"AI analysis suggests a blocked or overflowing drainage system. This is causing wastewater to accumulate on the street, which is a major health and sanitation concern. The sewage and sanitation department needs to address this.",
	},
	{
		[]string{"tree", "fallen", "branch"},
		"AI has identified a fallen tree or a large broken branch blocking a public path. This is an obstruction and a potential safety hazard. The parks or civic maintenance department should be alerted.",
	},
}

const analysisFallback = "AI analysis complete. The image shows a potential civic issue. Please review the generated description and add more specific details for clarity. Your input helps us improve!"

// DescribeImage produces a mock AI description of an uploaded photo from the
// issue title and the image filename.
func DescribeImage(title, filename string) string {
	combined := strings.ToLower(title) + " " + strings.ToLower(filename)
	for _, t := range analysisTemplates {
		for _, keyword := range t.keywords {
			if strings.Contains(combined, keyword) {
				return t.description
			}
		}
	}
	return analysisFallback
}
