// internal/store/fixtures.go
package store

import (
	"time"

	"github.com/eventide-app/eventide-backend/internal/models"
)

// Fixture records written on first access to an empty store. Timestamps are
// relative to process start so seeded data always reads as recent.

func fixtureUsers() []models.User {
	now := time.Now().UnixMilli()
	day := int64(24 * time.Hour / time.Millisecond)
	return []models.User{
		{
			ID:          "user-1",
			DisplayName: "Alice Wonderland",
			Email:       "alice@example.com",
			AvatarURL:   "https://placehold.co/100x100.png?text=AW",
			CreatedAt:   now - 5*day,
		},
		{
			ID:          "user-2",
			DisplayName: "Bob The Builder",
			Email:       "bob@example.com",
			AvatarURL:   "https://placehold.co/100x100.png?text=BB",
			CreatedAt:   now - 3*day,
		},
		{
			ID:          "user-3",
			DisplayName: "Charlie Brown",
			Email:       "charlie@example.com",
			AvatarURL:   "https://placehold.co/100x100.png?text=CB",
			CreatedAt:   now - day,
		},
	}
}

func fixtureEvents() []models.Event {
	now := time.Now()
	nowMs := now.UnixMilli()
	day := int64(24 * time.Hour / time.Millisecond)
	date := func(days int) string {
		return now.AddDate(0, 0, days).Format("2006-01-02")
	}
	return []models.Event{
		{
			ID:          "event-1",
			Name:        "Indie Music Fest",
			Date:        date(7),
			Time:        "18:00",
			Location:    "Downtown Park Amphitheater",
			Category:    "Music",
			Description: "Join us for a fantastic evening of live indie music from local bands. Food trucks and craft beer available. A perfect summer night out!",
			Links: []models.EventLink{
				{Label: "Buy Tickets", URL: "https://example.com/tickets/imf"},
				{Label: "Artist Lineup", URL: "https://example.com/lineup/imf"},
			},
			CreatedAt: nowMs - 10*day,
		},
		{
			ID:          "event-2",
			Name:        "Tech Innovators Summit",
			Date:        date(30),
			Time:        "09:00",
			Location:    "Grand Convention Center",
			Category:    "Tech",
			Description: "A two-day summit featuring keynote speakers, workshops, and networking opportunities for tech professionals and enthusiasts. Explore the future of technology.",
			Links: []models.EventLink{
				{Label: "Register Now", URL: "https://example.com/register/techsummit"},
			},
			CreatedAt: nowMs - 5*day,
		},
		{
			ID:          "event-3",
			Name:        "Local Art Fair",
			Date:        date(14),
			Time:        "10:00",
			Location:    "Community Art Gallery",
			Category:    "Art & Culture",
			Description: "Discover unique artworks from talented local artists. Paintings, sculptures, photography, and more. Free admission for all.",
			CreatedAt:   nowMs - 2*day,
		},
		{
			ID:          "event-4",
			Name:        "Gourmet Food Truck Rally",
			Date:        date(3),
			Time:        "12:00",
			Location:    "City Square",
			Category:    "Food & Drink",
			Description: "A delicious gathering of the best gourmet food trucks in the city. From tacos to crepes, there's something for everyone!",
			CreatedAt:   nowMs - day,
		},
		{
			ID:          "event-5",
			Name:        "Introduction to Pottery Workshop",
			Date:        date(21),
			Time:        "14:00",
			Location:    "The Craft Studio",
			Category:    "Workshop",
			Description: "Learn the basics of pottery in this hands-on workshop. All materials provided. Suitable for beginners. Limited spots available.",
			Links: []models.EventLink{
				{Label: "Book Your Spot", URL: "https://example.com/pottery-workshop"},
			},
			CreatedAt: nowMs,
		},
		{
			ID:          "event-6",
			Name:        "Community Charity Run",
			Date:        date(-2),
			Time:        "08:00",
			Location:    "Riverfront Trail",
			Category:    "Charity & Causes",
			Description: "Join our annual 5K charity run to support local causes. A fun event for the whole family. Thank you to all participants!",
			CreatedAt:   nowMs - 15*day,
		},
	}
}

func fixturePosts() []models.Post {
	now := time.Now().UnixMilli()
	minute := int64(time.Minute / time.Millisecond)
	hour := int64(time.Hour / time.Millisecond)
	return []models.Post{
		{
			ID:        "post-1",
			Author:    "Alice Wonderland",
			Content:   "So excited for the Indie Music Fest next week! Grabbed my tickets. Who else is going? #IndieMusic #LiveConcert",
			LikeCount: 15,
			CreatedAt: now - 30*minute,
		},
		{
			ID:        "post-2",
			Author:    "Bob The Builder",
			Content:   "The Tech Innovators Summit looks amazing. The speaker lineup is incredible. Definitely registering for this one. #Tech #Innovation",
			LikeCount: 8,
			CreatedAt: now - 2*hour,
		},
		{
			ID:        "post-3",
			Author:    "Charlie Brown",
			Content:   "Just visited the new cafe downtown. Great coffee and pastries! Perfect spot for a weekend brunch.",
			LikeCount: 22,
			CreatedAt: now - 24*hour,
		},
		{
			ID:        "post-4",
			Author:    "Guest User",
			Content:   "Anyone know if the Food Truck Rally is pet-friendly? Thinking of bringing my dog.",
			LikeCount: 3,
			CreatedAt: now - 5*hour,
		},
	}
}

func fixtureComments() []models.Comment {
	now := time.Now().UnixMilli()
	minute := int64(time.Minute / time.Millisecond)
	return []models.Comment{
		{
			ID:        "comment-1-1",
			PostID:    "post-1",
			Author:    "Bob The Builder",
			Content:   "I'm going! Heard the lineup is sick this year.",
			CreatedAt: now - 25*minute,
		},
		{
			ID:        "comment-1-2",
			PostID:    "post-1",
			ParentID:  "comment-1-1",
			Author:    "Alice Wonderland",
			Content:   "Awesome! We should meet up.",
			CreatedAt: now - 20*minute,
		},
		{
			ID:        "comment-1-3",
			PostID:    "post-1",
			Author:    "Charlie Brown",
			Content:   "Wish I could make it, sounds fun!",
			CreatedAt: now - 15*minute,
		},
		{
			ID:        "comment-1-4",
			PostID:    "post-1",
			ParentID:  "comment-1-2",
			Author:    "Bob The Builder",
			Content:   "For sure! I'll be near the main stage around 7pm.",
			CreatedAt: now - 10*minute,
		},
		{
			ID:        "comment-2-1",
			PostID:    "post-2",
			Author:    "Alice Wonderland",
			Content:   "Which workshop are you most excited about?",
			CreatedAt: now - 60*minute,
		},
	}
}

func fixtureChat() ([]models.ChatConversation, []models.ChatMessage) {
	now := time.Now().UnixMilli()
	minute := int64(time.Minute / time.Millisecond)
	users := fixtureUsers()
	participant := func(u models.User) models.ChatParticipant {
		return models.ChatParticipant{ID: u.ID, DisplayName: u.DisplayName, AvatarURL: u.AvatarURL}
	}
	alice, bob, charlie := users[0], users[1], users[2]

	messages := []models.ChatMessage{
		{ID: "chatmsg-1", ConversationID: "convo-1-2", SenderID: alice.ID, Text: "Hey Bob, are you going to the Indie Music Fest?", Timestamp: now - 10*minute},
		{ID: "chatmsg-2", ConversationID: "convo-1-2", SenderID: bob.ID, Text: "Hey Alice! Yeah, definitely. Already got my ticket!", Timestamp: now - 9*minute},
		{ID: "chatmsg-3", ConversationID: "convo-1-2", SenderID: alice.ID, Text: "Sweet! We should try to meet up.", Timestamp: now - 8*minute},
		{ID: "chatmsg-4", ConversationID: "convo-1-3", SenderID: alice.ID, Text: "Hi Charlie, how's it going?", Timestamp: now - 120*minute},
		{ID: "chatmsg-5", ConversationID: "convo-1-3", SenderID: charlie.ID, Text: "Hey Alice! Doing well, just busy with work. You?", Timestamp: now - 90*minute},
		{ID: "chatmsg-6", ConversationID: "convo-2-3", SenderID: bob.ID, Text: "Charlie, did you see the new tools at the hardware store?", Timestamp: now - 30*minute},
	}

	conversations := []models.ChatConversation{
		{
			ID:             "convo-1-2",
			ParticipantIDs: []string{alice.ID, bob.ID},
			Participants:   []models.ChatParticipant{participant(alice), participant(bob)},
			LastMessage:    &messages[2],
			LastMessageAt:  messages[2].Timestamp,
			CreatedAt:      now - 15*minute,
		},
		{
			ID:             "convo-1-3",
			ParticipantIDs: []string{alice.ID, charlie.ID},
			Participants:   []models.ChatParticipant{participant(alice), participant(charlie)},
			LastMessage:    &messages[4],
			LastMessageAt:  messages[4].Timestamp,
			CreatedAt:      now - 180*minute,
		},
		{
			ID:             "convo-2-3",
			ParticipantIDs: []string{bob.ID, charlie.ID},
			Participants:   []models.ChatParticipant{participant(bob), participant(charlie)},
			LastMessage:    &messages[5],
			LastMessageAt:  messages[5].Timestamp,
			CreatedAt:      now - 45*minute,
		},
	}
	return conversations, messages
}
