/* announcer.go
 * Posts a summary to a Discord channel after each scheduled sync run: how
 * many results changed and the current top of the leaderboard. Optional;
 * the application runs fine with no announcer configured
 */

package bot

import (
	"fmt"
	"strings"

	api "cfp-bracket/api/api"

	"github.com/bwmarrin/discordgo"
)

type Announcer struct {
	session   *discordgo.Session
	channelId string
}

// NewAnnouncer creates a Discord announcer. Message sends go over the REST
// API so no gateway connection is opened
func NewAnnouncer(botToken string, channelId string) (*Announcer, error) {
	if botToken == "" || channelId == "" {
		return nil, fmt.Errorf("botToken and channelId are required but were not provided")
	}

	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, err
	}

	return &Announcer{
		session:   session,
		channelId: channelId,
	}, nil
}

// AnnounceSync posts the outcome of a sync run. Quiet runs (nothing changed)
// are not announced to avoid spamming the channel
func (a *Announcer) AnnounceSync(report api.SyncReport, board api.LeaderboardPage) error {
	if report.ScoresUpdated == 0 {
		return nil
	}

	_, err := a.session.ChannelMessageSend(a.channelId, FormatSyncMessage(report, board))
	if err != nil {
		return fmt.Errorf("failed to send sync announcement: %w", err)
	}
	return nil
}

// FormatSyncMessage renders the announcement body. Split out from the send
// path so it can be tested without a Discord session
func FormatSyncMessage(report api.SyncReport, board api.LeaderboardPage) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("Results are in! %d prediction scores changed.\n", report.ScoresUpdated))

	if len(board.Entries) > 0 {
		msg.WriteString("Current standings:\n")
	}
	for _, entry := range board.Entries {
		if entry.Rank > 5 {
			break
		}
		msg.WriteString(fmt.Sprintf("%d. %s (%s), %d points\n", entry.Rank, entry.Name, entry.OwnerLabel, entry.Score))
	}

	return msg.String()
}
