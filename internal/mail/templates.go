package mail

import (
	"html/template"
	"strings"
	"time"
)

// Subjects for the lifecycle mails.
const (
	SubjectSignupConfirmation = "Welcome to the Member Directory - Registration Confirmation"
	SubjectAdminNewMember     = "New Member Registration - Approval Required"
	SubjectApproval           = "Your Account Has Been Approved!"
	SubjectRejection          = "Application Status Update"
)

var baseTmpl = template.Must(template.New("mail").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #2d3748; color: white; padding: 24px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
    .info-box { background: #f7fafc; padding: 15px; border-left: 4px solid #667eea; margin: 15px 0; }
    .footer { text-align: center; margin-top: 20px; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>Member Directory</h1></div>
    <div class="content">{{.Body}}</div>
    <div class="footer"><p>&copy; {{.Year}} Member Directory. All rights reserved.</p></div>
  </div>
</body>
</html>
`))

type templateData struct {
	Body template.HTML
	Year int
}

var (
	signupBody = template.Must(template.New("signup").Parse(`
      <h2>Welcome, {{.Name}}!</h2>
      <p>Thank you for registering with the <strong>Member Directory</strong>.</p>
      <p>Your account has been created successfully and is currently <strong>pending admin approval</strong>.</p>
      <h3>What's Next?</h3>
      <ul>
        <li>Our admin team will review your profile within 24-48 hours</li>
        <li>You'll receive a confirmation email once approved</li>
        <li>After approval, you can login and access the directory</li>
      </ul>
      <p><strong>Best regards,</strong><br>The Member Directory Team</p>`))

	adminNewMemberBody = template.Must(template.New("adminNewMember").Parse(`
      <h2>New Member Awaiting Approval</h2>
      <div class="info-box">
        <p><strong>Name:</strong> {{.Name}}</p>
        <p><strong>Email:</strong> {{.Email}}</p>
        <p><strong>Department:</strong> {{.Department}}</p>
        <p><strong>Languages:</strong> {{.Languages}}</p>
      </div>
      <p>Please review this registration in the admin dashboard.</p>`))

	approvalBody = template.Must(template.New("approval").Parse(`
      <h2>Congratulations, {{.Name}}!</h2>
      <p>Your account has been <strong>approved</strong>. You can now login and browse the member directory.</p>
      <p><strong>Best regards,</strong><br>The Member Directory Team</p>`))

	rejectionBody = template.Must(template.New("rejection").Parse(`
      <h2>Hello {{.Name}},</h2>
      <p>Thank you for your interest in the Member Directory.</p>
      <p>After reviewing your application, we are unable to approve your membership at this time.</p>
      <p><strong>Best regards,</strong><br>The Member Directory Team</p>`))
)

func renderWrapped(body *template.Template, data any) (string, error) {
	var inner strings.Builder
	if err := body.Execute(&inner, data); err != nil {
		return "", err
	}
	var out strings.Builder
	err := baseTmpl.Execute(&out, templateData{
		Body: template.HTML(inner.String()),
		Year: time.Now().Year(),
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// SignupConfirmation renders the registrant welcome mail.
func SignupConfirmation(name string) (string, error) {
	return renderWrapped(signupBody, struct{ Name string }{name})
}

// AdminNewMemberNotification renders the admin approval prompt.
func AdminNewMemberNotification(name, email, department string, languages []string) (string, error) {
	return renderWrapped(adminNewMemberBody, struct {
		Name       string
		Email      string
		Department string
		Languages  string
	}{name, email, department, strings.Join(languages, ", ")})
}

// ApprovalConfirmation renders the approval mail.
func ApprovalConfirmation(name string) (string, error) {
	return renderWrapped(approvalBody, struct{ Name string }{name})
}

// RejectionNotification renders the rejection mail.
func RejectionNotification(name string) (string, error) {
	return renderWrapped(rejectionBody, struct{ Name string }{name})
}
