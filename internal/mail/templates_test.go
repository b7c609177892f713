package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupConfirmation(t *testing.T) {
	html, err := SignupConfirmation("Asha")
	require.NoError(t, err)
	assert.Contains(t, html, "Welcome, Asha!")
	assert.Contains(t, html, "pending admin approval")
}

func TestAdminNewMemberNotification(t *testing.T) {
	html, err := AdminNewMemberNotification("Asha", "asha@x.com", "Director", []string{"Hindi", "English"})
	require.NoError(t, err)
	assert.Contains(t, html, "asha@x.com")
	assert.Contains(t, html, "Director")
	assert.Contains(t, html, "Hindi, English")
}

func TestApprovalAndRejection(t *testing.T) {
	approval, err := ApprovalConfirmation("Asha")
	require.NoError(t, err)
	assert.Contains(t, approval, "approved")

	rejection, err := RejectionNotification("Asha")
	require.NoError(t, err)
	assert.Contains(t, rejection, "unable to approve")
}

func TestTemplatesEscapeUserContent(t *testing.T) {
	html, err := SignupConfirmation(`<script>alert("x")</script>`)
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>"), "member-supplied values must be escaped")
}
