package shell

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"quickchat/internal/domain"
	"quickchat/internal/logging"
	messagesvc "quickchat/internal/services/message"
	"quickchat/internal/validate"
)

const (
	maxMessageLength = 250
	maxLoginAttempts = 3
)

// Shell runs the interactive QuickChat session: register, log in, then the
// message menu until the user quits.
type Shell struct {
	accounts domain.AccountService
	registry domain.MessageRegistry
	in       *bufio.Reader
	out      io.Writer
	log      logging.Logger
}

// New builds a shell reading from in and writing to out.
func New(accounts domain.AccountService, registry domain.MessageRegistry,
	in io.Reader, out io.Writer, log logging.Logger) *Shell {
	return &Shell{
		accounts: accounts,
		registry: registry,
		in:       bufio.NewReader(in),
		out:      out,
		log:      log,
	}
}

// Run drives the whole session. It returns early only on input errors
// (typically EOF on a closed stdin).
func (s *Shell) Run(ctx context.Context) error {
	if err := s.register(); err != nil {
		return err
	}
	loggedIn, err := s.login()
	if err != nil {
		return err
	}
	if !loggedIn {
		fmt.Fprintln(s.out, "Too many failed login attempts. Exiting application.")
		return nil
	}

	fmt.Fprintln(s.out, "\nWelcome to QuickChat.")
	_ = s.registry.Load()
	return s.menu(ctx)
}

// register keeps prompting until a registration succeeds.
func (s *Shell) register() error {
	fmt.Fprintln(s.out, "--- QuickChat Registration ---")
	for {
		firstName, err := readLine(s.in, "Enter your first name: ", s.out)
		if err != nil {
			return err
		}
		lastName, err := readLine(s.in, "Enter your last name: ", s.out)
		if err != nil {
			return err
		}
		username, err := readLine(s.in, "Enter desired username (2-7 chars, include an underscore): ", s.out)
		if err != nil {
			return err
		}
		password, err := readSecret("Enter desired password (min 8 chars, 1 capital, 1 number, 1 special char): ", s.out)
		if err != nil {
			return err
		}
		cellNumber, err := readLine(s.in, "Enter South African cell phone number (+27XXXXXXXXX): ", s.out)
		if err != nil {
			return err
		}

		if err := s.accounts.Register(username, password, cellNumber, firstName, lastName); err != nil {
			fmt.Fprintln(s.out, err)
			fmt.Fprintln(s.out, "Registration failed. Please try again.")
			continue
		}
		fmt.Fprintln(s.out, "User registered successfully.")
		return nil
	}
}

// login allows up to three attempts and reports whether one succeeded.
func (s *Shell) login() (bool, error) {
	fmt.Fprintln(s.out, "\n--- QuickChat Login ---")
	for attempt := 1; attempt <= maxLoginAttempts; attempt++ {
		username, err := readLine(s.in, "Enter your username: ", s.out)
		if err != nil {
			return false, err
		}
		password, err := readSecret("Enter your password: ", s.out)
		if err != nil {
			return false, err
		}

		ok := s.accounts.Login(username, password)
		fmt.Fprintln(s.out, s.accounts.LoginStatus(ok))
		if ok {
			return true, nil
		}
		if attempt < maxLoginAttempts {
			fmt.Fprintf(s.out, "Login attempt %d failed. Please try again.\n", attempt)
		}
	}
	return false, nil
}

func (s *Shell) menu(ctx context.Context) error {
	for {
		fmt.Fprint(s.out, "\n--- QuickChat Menu ---\n"+
			"1) Send Messages\n"+
			"2) Show recently sent messages\n"+
			"3) Display Reports\n"+
			"4) Quit\n")
		choice, err := readInt(s.in, "Select an option: ", s.out)
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			if err := s.sendMessages(ctx); err != nil {
				return err
			}
		case 2:
			s.showSentMessages()
		case 3:
			if err := s.reports(); err != nil {
				return err
			}
		case 4:
			fmt.Fprintln(s.out, "Exiting QuickChat. Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please select 1, 2, 3, or 4.")
		}
	}
}

// sendMessages collects a batch of messages, classifying each one as the
// user decides.
func (s *Shell) sendMessages(ctx context.Context) error {
	var count int
	for {
		n, err := readInt(s.in, "How many messages do you wish to enter? ", s.out)
		if err != nil {
			return err
		}
		if n <= 0 {
			fmt.Fprintln(s.out, "Please enter a positive number of messages.")
			continue
		}
		count = n
		break
	}

	for i := 0; i < count; i++ {
		fmt.Fprintf(s.out, "\n--- Composing Message %d ---\n", i+1)

		var recipient string
		for {
			r, err := readLine(s.in, "Enter recipient cell number (+27XXXXXXXXX): ", s.out)
			if err != nil {
				return err
			}
			if validate.CellNumber(r) {
				fmt.Fprintln(s.out, "Cell phone number successfully captured.")
				recipient = r
				break
			}
			fmt.Fprintln(s.out, "Cell phone number is incorrectly formatted or does not contain an international code. Please correct the number and try again.")
		}

		var text string
		for {
			t, err := readLine(s.in, "Enter your message (max 250 characters): ", s.out)
			if err != nil {
				return err
			}
			if len(t) <= maxMessageLength {
				fmt.Fprintln(s.out, "Message ready to send.")
				text = t
				break
			}
			fmt.Fprintf(s.out, "Message exceeds %d characters by %d, please reduce size.\n",
				maxMessageLength, len(t)-maxMessageLength)
		}

		msg := messagesvc.New(recipient, text)
		fmt.Fprintf(s.out, "Message ID generated: %s\n", msg.ID)

		fmt.Fprint(s.out, "What would you like to do with this message?\n"+
			"1) Send Message\n"+
			"2) Store Message to send later\n"+
			"3) Disregard Message\n")
		choice, err := readInt(s.in, "Select an option: ", s.out)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			s.registry.ClassifySent(msg)
			fmt.Fprintln(s.out, "Message successfully sent.")
			fmt.Fprintln(s.out, messageDetails(msg))
		case 2:
			if err := s.registry.ClassifyStored(msg); err != nil {
				s.log.Error(ctx, "storing message failed", "id", msg.ID, "err", err)
				fmt.Fprintln(s.out, "Warning: message kept in memory but could not be written to disk.")
			}
			fmt.Fprintln(s.out, "Message successfully stored.")
			if raw, err := json.Marshal(msg); err == nil {
				fmt.Fprintf(s.out, "Message stored for later sending (JSON):\n%s\n", raw)
			}
		default:
			s.registry.ClassifyDisregarded(msg)
			fmt.Fprintln(s.out, "Message disregarded.")
		}
	}

	fmt.Fprintf(s.out, "\nTotal messages sent during this session: %d\n", s.registry.TotalSent())
	return nil
}

func (s *Shell) showSentMessages() {
	sent := s.registry.Sent()
	if len(sent) == 0 {
		fmt.Fprintln(s.out, "No messages have been sent yet.")
		return
	}
	sess := s.accounts.Session()
	fmt.Fprintf(s.out, "\n--- Full Report of All Sent Messages ---\n\nSender: %s %s\n\n",
		sess.FirstName, sess.LastName)
	for i, m := range sent {
		fmt.Fprintf(s.out, "Message #%d:\n%s\n\n", i+1, messageDetails(m))
	}
}

func (s *Shell) reports() error {
	for {
		fmt.Fprint(s.out, "\n--- Message Reports ---\n"+
			"1) Display All Sent Messages\n"+
			"2) Display Longest Sent Message\n"+
			"3) Search by Message ID\n"+
			"4) Search by Recipient\n"+
			"5) Delete Message by Hash\n"+
			"6) Back to Main Menu\n")
		choice, err := readInt(s.in, "Select an option: ", s.out)
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			s.showSentMessages()
		case 2:
			s.showLongestSent()
		case 3:
			if err := s.searchByID(); err != nil {
				return err
			}
		case 4:
			if err := s.searchByRecipient(); err != nil {
				return err
			}
		case 5:
			if err := s.deleteByHash(); err != nil {
				return err
			}
		case 6:
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please select a valid option.")
		}
	}
}

func (s *Shell) showLongestSent() {
	longest, ok := s.registry.LongestSent()
	if !ok {
		fmt.Fprintln(s.out, "No messages have been sent to determine the longest message.")
		return
	}
	fmt.Fprintf(s.out, "Longest Sent Message:\nLength: %d characters\nMessage: %q\n",
		len(longest.Text), longest.Text)
}

func (s *Shell) searchByID() error {
	id, err := readLine(s.in, "Enter Message ID to search: ", s.out)
	if err != nil {
		return err
	}
	if id == "" {
		fmt.Fprintln(s.out, "Search cancelled or empty ID entered.")
		return nil
	}
	m, ok := s.registry.FindByID(id)
	if !ok {
		fmt.Fprintf(s.out, "No message found with ID: %s\n", id)
		return nil
	}
	fmt.Fprintf(s.out, "Message Found (ID: %s):\nRecipient: %s\nMessage: %q\n",
		id, m.Recipient, m.Text)
	return nil
}

func (s *Shell) searchByRecipient() error {
	recipient, err := readLine(s.in, "Enter Recipient Cell Number to search: ", s.out)
	if err != nil {
		return err
	}
	if recipient == "" {
		fmt.Fprintln(s.out, "Search cancelled or empty recipient entered.")
		return nil
	}
	matches := s.registry.FindByRecipient(recipient)
	if len(matches) == 0 {
		fmt.Fprintf(s.out, "No messages found for recipient: %s\n", recipient)
		return nil
	}
	fmt.Fprintf(s.out, "Messages for Recipient: %s\n\n", recipient)
	for _, match := range matches {
		fmt.Fprintf(s.out, "- %q (ID: %s, Status: %s)\n",
			match.Message.Text, match.Message.ID, match.Status)
	}
	return nil
}

func (s *Shell) deleteByHash() error {
	hash, err := readLine(s.in, "Enter Message Hash to delete: ", s.out)
	if err != nil {
		return err
	}
	if hash == "" {
		fmt.Fprintln(s.out, "Deletion cancelled or empty hash entered.")
		return nil
	}
	m, err := s.registry.DeleteByHash(hash)
	if errors.Is(err, messagesvc.ErrNotFound) {
		fmt.Fprintf(s.out, "No message found with hash: %s\n", hash)
		return nil
	}
	if err != nil {
		fmt.Fprintln(s.out, "Warning: message deleted in memory but the stored file could not be updated.")
	}
	fmt.Fprintf(s.out, "Message %q successfully deleted.\n", m.Text)
	return nil
}

// messageDetails renders the full display block for a message.
func messageDetails(m *domain.Message) string {
	hash := m.Hash
	if hash == "" {
		hash = "Not Generated"
	}
	return fmt.Sprintf("Message ID: %s\nMessage Hash: %s\nRecipient: %s\nMessage: %q",
		m.ID, hash, m.Recipient, m.Text)
}
