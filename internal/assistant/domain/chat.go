package domain

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one message of a session's chat transcript. Transcripts are
// append-only and die with the process.
type Turn struct {
	ID   string
	Role string
	Text string
}

// WelcomeText opens every new conversation before the user says anything.
const WelcomeText = "Sawasdee krub! 🙏 I am Nong Read. Can I help you find a book or check payment options (TrueMoney, QR, COD)?"
