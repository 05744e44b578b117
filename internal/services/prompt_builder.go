package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/justsurfingit/job-mailer/internal/models"
)

// NoRecipientSentinel is what the model is told to answer when the job post
// carries no address.
const NoRecipientSentinel = "none@found.com"

var styleDirectives = map[models.Style]string{
	models.StyleStandard:  "Create a professional, straightforward email focusing on relevant qualifications. Use formal language, clear structure, and highlight 2-3 key qualifications that match job requirements.",
	models.StyleCreative:  "Create an engaging, memorable email with personality. Use a compelling hook, conversational yet professional tone, and distinctive approach while still highlighting relevant qualifications.",
	models.StyleTechnical: "Create a detail-oriented email emphasizing technical expertise. Reference specific technical skills, metrics, and relevant accomplishments with precise language and clear demonstration of technical knowledge.",
	models.StyleExecutive: "Create a sophisticated email highlighting leadership and strategic value. Emphasize high-level achievements, business impact, and leadership qualities with confident, executive-level language.",
}

// StyleDirective returns the writing instruction for style, standard for anything unknown.
func StyleDirective(style models.Style) string {
	if d, ok := styleDirectives[style]; ok {
		return d
	}
	return styleDirectives[models.StyleStandard]
}

// applicantDetails is the only part of the profile the model ever sees.
type applicantDetails struct {
	FullName  string `json:"fullName,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

const applicationEmailPrompt = `
# PROFESSIONAL JOB APPLICATION EMAIL GENERATOR

You are an expert AI copywriter specializing in creating highly effective job application emails. Your goal is to craft a personalized, compelling email that will maximize the applicant's chances of getting an interview.

## TASK
Generate a professional job application email based on the provided resume, job posting, and template style.

## EMAIL COMPONENTS TO GENERATE
Return ONLY a valid JSON object with exactly these four fields and nothing else:
{
  "subject": "A compelling, concise subject line that grabs attention",
  "body": "The complete email body (not including the signature)",
  "signature": "Professional signature with name and contact info",
  "receiverEmail": "The recipient's email address extracted from job post or provided input"
}

## TEMPLATE STYLE: %s
%s

## INPUT DATA
1. JOB POST:
%s

2. RESUME CONTENT:
%s

3. APPLICANT DETAILS:
%s

4. SPECIAL INSTRUCTIONS:
%s

5. RECEIVER EMAIL:
%s

## REQUIREMENTS AND GUIDELINES

### EMAIL STRUCTURE
- SUBJECT LINE: Brief, specific, and attention-grabbing (5-10 words)
- GREETING: Personalized with recipient's name if available
- OPENING: Strong first paragraph stating interest in specific position and brief introduction
- BODY: 1-2 concise paragraphs highlighting ONLY the relevant experience/skills from resume that match job requirements
- CALL TO ACTION: Clear request for interview or conversation
- SIGNATURE: Include full name and contact information, github or other social links. If the job post asks for specific profile links, add them.

### CRITICAL RULES
1. RECEIVER EMAIL: If email is not provided in input #5, extract it from the job post. If none found, use "%s"
2. PERSONALIZATION: Reference specific company details, job requirements, or projects mentioned in job post
3. RELEVANCE: Focus only on experience and skills directly relevant to this specific job
4. BREVITY: Keep email under 250 words total
5. ACCURACY: Only include qualifications that are actually in the resume
6. FORMAT: Return only the JSON object - no markdown, no code fences, no backticks, no prose before or after it

### SPECIAL FORMATTING
- Body text should use appropriate paragraph breaks for readability
- Do not include the subject line within the body text
- Ensure signature is formatted professionally with name and contact information

Generate the email JSON now.
`

// BuildPrompt assembles the generation payload. It is pure: the same input
// and profile always produce the same text.
func BuildPrompt(in models.GenerationInput, p *models.Profile) string {
	style := models.ParseStyle(string(in.Style))

	instructions := in.Instructions
	if strings.TrimSpace(instructions) == "" {
		instructions = "No special instructions provided."
	}

	recipient := in.Recipient
	if strings.TrimSpace(recipient) == "" {
		recipient = "Not provided - extract from job post if available"
	}

	return fmt.Sprintf(applicationEmailPrompt,
		strings.ToUpper(string(style)),
		StyleDirective(style),
		in.JobPost,
		p.ResumeContent,
		applicantJSON(p),
		instructions,
		recipient,
		NoRecipientSentinel,
	)
}

func applicantJSON(p *models.Profile) string {
	details := applicantDetails{
		FullName:  p.FullName,
		Phone:     p.Phone,
		LinkedIn:  p.LinkedIn,
		GitHub:    p.GitHub,
		Portfolio: p.Portfolio,
	}
	// Marshalling a struct of strings cannot fail.
	data, _ := json.Marshal(details)
	return string(data)
}
