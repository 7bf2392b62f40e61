// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import "minimax/internal/models"

// The per-style tables below are built once at start-up and never written
// afterwards. Accessors copy rows out before handing them to callers.

// hookTemplates holds five hook templates per style, each with one %s
// placeholder for the topic.
var hookTemplates = map[models.Style][]string{
	models.StyleEducational: {
		"Did you know that %s?",
		"Here's what nobody tells you about %s",
		"The truth about %s might surprise you",
		"3 facts about %s that changed my perspective",
		"Let me explain %s in 60 seconds",
	},
	models.StyleEntertainment: {
		"Wait until you see what happens with %s",
		"POV: You just discovered %s",
		"When %s goes exactly as planned",
		"Nobody: ... Me: %s",
		"This %s moment is everything",
	},
	models.StyleLifestyle: {
		"A day in my life with %s",
		"How %s changed my routine",
		"My honest review of %s",
		"Living with %s is actually...",
		"The reality of %s nobody shows",
	},
	models.StyleMotivational: {
		"If you're struggling with %s, watch this",
		"This %s lesson changed everything for me",
		"Why %s matters more than you think",
		"The %s journey nobody talks about",
		"Here's your sign to start %s",
	},
	models.StyleTrendy: {
		"Everyone's talking about %s and here's why",
		"The %s trend but make it ✨aesthetic✨",
		"Doing the %s challenge because why not",
		"This %s is going viral for a reason",
		"Trying %s so you don't have to",
	},
	models.StyleStorytelling: {
		"Let me tell you about the time %s",
		"Story time: How %s completely changed things",
		"You won't believe what happened when %s",
		"Part 1: My experience with %s",
		"Storytime: The %s that nobody expected",
	},
}

// outlines holds the fixed six-beat script outline for each style.
var outlines = map[models.Style][]string{
	models.StyleEducational: {
		"🎬 Hook: Start with surprising fact or question",
		"📚 Context: Explain the background (5-10 seconds)",
		"💡 Main Points: Cover 3 key insights (20-30 seconds)",
		"🔍 Deep Dive: Elaborate on the most important point (10-15 seconds)",
		"✅ Conclusion: Summarize key takeaway (5 seconds)",
		"👉 CTA: Encourage engagement",
	},
	models.StyleEntertainment: {
		"🎬 Hook: Grab attention with humor or unexpected moment",
		"😄 Setup: Create the scenario (10 seconds)",
		"🎭 Build: Escalate the situation (15-20 seconds)",
		"💥 Climax: Deliver the punchline or peak moment (10 seconds)",
		"😂 Reaction: Show genuine reaction (5 seconds)",
		"👉 CTA: Ask viewers to share their experiences",
	},
	models.StyleLifestyle: {
		"🎬 Hook: Show the end result or key moment",
		"🌅 Introduction: Set the scene (5-10 seconds)",
		"📸 Journey: Walk through the process or day (25-30 seconds)",
		"💭 Reflection: Share honest thoughts (10 seconds)",
		"⭐ Highlight: Show favorite part or tip (5 seconds)",
		"👉 CTA: Invite questions or suggestions",
	},
	models.StyleMotivational: {
		"🎬 Hook: Start with relatable struggle or bold statement",
		"💪 Problem: Acknowledge the challenge (10 seconds)",
		"🌟 Transformation: Share what changed (15 seconds)",
		"🔑 Lesson: Reveal key insights (15 seconds)",
		"🚀 Action Steps: Provide practical advice (10 seconds)",
		"👉 CTA: Encourage viewers to take action",
	},
	models.StyleTrendy: {
		"🎬 Hook: Jump on trend immediately",
		"🎵 Setup: Sync with trending sound (5 seconds)",
		"✨ Execution: Perform the trend with personal twist (20-25 seconds)",
		"🎨 Aesthetic Moment: Include visually pleasing shot (10 seconds)",
		"🔥 Finale: Strong ending with energy (5 seconds)",
		"👉 CTA: Challenge others to participate",
	},
	models.StyleStorytelling: {
		"🎬 Hook: Start with the most dramatic moment",
		"📖 Background: Set up the story (10 seconds)",
		"⚡ Rising Action: Build tension (15 seconds)",
		"🎯 Climax: Reveal the turning point (10 seconds)",
		"🌈 Resolution: Show the outcome (10 seconds)",
		"👉 CTA: Ask for viewers' similar stories",
	},
}

// captionTemplates holds exactly one caption per style; %s is the topic.
var captionTemplates = map[models.Style]string{
	models.StyleEducational:   "Breaking down %s 📚✨\n\nSave this for later! Drop a 💡 if you learned something new.\n\n",
	models.StyleEntertainment: "When %s 😂💀\n\nTag someone who needs to see this!\n\n",
	models.StyleLifestyle:     "Real talk about %s ☕✨\n\nWhat's your experience? Comment below! 👇\n\n",
	models.StyleMotivational:  "Your reminder about %s 💪🌟\n\nYou've got this! Share to inspire others.\n\n",
	models.StyleTrendy:        "%s but make it ✨aesthetic✨\n\nWho else is trying this? 🔥\n\n",
	models.StyleStorytelling:  "Story time: %s 📖\n\nPart 1 of ? Comment if you want part 2!\n\n",
}

// ctaTemplates holds five call-to-action phrases per style.
var ctaTemplates = map[models.Style][]string{
	models.StyleEducational: {
		"Follow for more educational content!",
		"Save this post for later reference!",
		"Share this with someone learning about this topic!",
		"Comment your questions below!",
		"What topic should I cover next?",
	},
	models.StyleEntertainment: {
		"Tag a friend who relates!",
		"Follow for daily laughs!",
		"Drop a 😂 in the comments!",
		"Share if this made your day!",
		"Who else has experienced this?",
	},
	models.StyleLifestyle: {
		"Let me know your thoughts in the comments!",
		"Follow for more lifestyle content!",
		"Share your own tips below!",
		"What would you do differently?",
		"Drop a ❤️ if you enjoyed this!",
	},
	models.StyleMotivational: {
		"Save this as your daily reminder!",
		"Tag someone who needs this today!",
		"Follow for daily motivation!",
		"Comment your goals below!",
		"Share to inspire your community!",
	},
	models.StyleTrendy: {
		"Challenge accepted? Tag me in yours!",
		"Who's doing this next?",
		"Follow to catch all the trends!",
		"Duet this if you dare!",
		"Rate this trend 1-10!",
	},
	models.StyleStorytelling: {
		"Comment if you want Part 2!",
		"What do you think happens next?",
		"Share your similar story below!",
		"Follow for the full series!",
		"Which part surprised you most?",
	},
}

// baseHashtags holds ten base tags per style, without the leading '#'.
// Only the first five are used. The educational row repeats "educational".
var baseHashtags = map[models.Style][]string{
	models.StyleEducational: {
		"fyp", "foryou", "educational", "learnontiktok", "todayilearned",
		"knowledge", "facts", "educational", "learn", "tutorial",
	},
	models.StyleEntertainment: {
		"fyp", "foryou", "funny", "comedy", "humor",
		"entertainment", "viral", "trending", "memes", "relatable",
	},
	models.StyleLifestyle: {
		"fyp", "foryou", "lifestyle", "dailyvlog", "lifestyleblogger",
		"dayinmylife", "aesthetic", "vlog", "reallife", "authentic",
	},
	models.StyleMotivational: {
		"fyp", "foryou", "motivation", "inspiration", "motivational",
		"mindset", "growth", "selfimprovement", "positivity", "success",
	},
	models.StyleTrendy: {
		"fyp", "foryou", "trending", "viral", "trend",
		"tiktoktrend", "challenge", "aesthetic", "vibes", "popular",
	},
	models.StyleStorytelling: {
		"fyp", "foryou", "storytime", "story", "storytelling",
		"realstory", "mystory", "series", "part1", "storymode",
	},
}
