package service

import "yt_agent_v1_202610/internal/model"

// 以下字段与 niche 无关，直接按语言返回固定内容

// ==================== 发布节奏 ====================

var postingStrategies = map[model.Language]model.PostingStrategy{
	model.LanguageHinglish: {
		BestDays:   "Thursday, Friday, Saturday (Weekend se pehle aur weekend)",
		BestTimes:  "6-9 AM (Morning), 12-2 PM (Lunch), 6-10 PM (Evening prime time)",
		Frequency:  "Shorts: Daily 2-3, Long-form: 3-4 per week",
		ContentMix: "70% Shorts/Reels (viral potential), 30% Long-form (deep value)",
	},
	model.LanguageHindi: {
		BestDays:   "गुरुवार, शुक्रवार, शनिवार",
		BestTimes:  "सुबह 6-9, दोपहर 12-2, शाम 6-10",
		Frequency:  "शॉर्ट्स: दैनिक 2-3, लंबे वीडियो: सप्ताह में 3-4",
		ContentMix: "70% शॉर्ट्स, 30% लंबे वीडियो",
	},
	model.LanguageEnglish: {
		BestDays:   "Thursday, Friday, Saturday (Before & during weekend)",
		BestTimes:  "6-9 AM (Morning), 12-2 PM (Lunch), 6-10 PM (Evening prime)",
		Frequency:  "Shorts: 2-3 daily, Long-form: 3-4 per week",
		ContentMix: "70% Shorts/Reels (viral), 30% Long-form (value)",
	},
}

// ==================== 自动化工具清单 ====================

var automationTools = map[model.Language][]model.ToolCategory{
	model.LanguageHinglish: {
		{
			Category: "🎬 Video Creation & Editing",
			Tools: []model.Tool{
				{Name: "Pictory.ai", Purpose: "Script se automatically video banao with stock footage"},
				{Name: "Descript", Purpose: "Text-based editing, remove filler words automatically"},
				{Name: "CapCut (Desktop)", Purpose: "Auto-captions, trending templates, batch editing"},
				{Name: "Runway ML", Purpose: "AI video effects, background removal, motion tracking"},
			},
		},
		{
			Category: "🎙️ Voiceover & Audio",
			Tools: []model.Tool{
				{Name: "ElevenLabs", Purpose: "Ultra-realistic AI voiceover in Hindi/English"},
				{Name: "Murf.ai", Purpose: "Professional voiceovers, multiple accents"},
				{Name: "Adobe Podcast AI", Purpose: "Audio cleanup, noise removal"},
				{Name: "Speechify", Purpose: "Text-to-speech for quick narration"},
			},
		},
		{
			Category: "📝 Script & Content Writing",
			Tools: []model.Tool{
				{Name: "ChatGPT/Claude", Purpose: "Full scripts, hooks, titles, descriptions likhne ke liye"},
				{Name: "Copy.ai", Purpose: "Multiple variations, A/B testing content"},
				{Name: "Jasper", Purpose: "SEO-optimized content generation"},
			},
		},
		{
			Category: "🎨 Thumbnails & Graphics",
			Tools: []model.Tool{
				{Name: "Canva Pro", Purpose: "AI-powered thumbnail templates, Magic Eraser"},
				{Name: "Thumbly.ai", Purpose: "AI thumbnail generator specifically for YouTube"},
				{Name: "Photopea", Purpose: "Free Photoshop alternative, browser-based"},
				{Name: "Remove.bg", Purpose: "Instant background removal"},
			},
		},
		{
			Category: "🔍 Trend Research & Analytics",
			Tools: []model.Tool{
				{Name: "VidIQ", Purpose: "Keyword research, trending topics, competitor analysis"},
				{Name: "TubeBuddy", Purpose: "SEO, best posting times, A/B testing"},
				{Name: "Google Trends", Purpose: "Real-time trending topics by region"},
				{Name: "Answer The Public", Purpose: "Question-based content ideas"},
			},
		},
		{
			Category: "⏰ Scheduling & Publishing",
			Tools: []model.Tool{
				{Name: "YouTube Studio (Built-in)", Purpose: "Schedule videos weeks in advance"},
				{Name: "Buffer/Hootsuite", Purpose: "Cross-platform scheduling (YouTube + Instagram + TikTok)"},
				{Name: "Later", Purpose: "Visual content calendar"},
			},
		},
		{
			Category: "🤖 Full Automation Workflow",
			Tools: []model.Tool{
				{Name: "Make.com (Integromat)", Purpose: "Connect all tools together, full automation"},
				{Name: "Zapier", Purpose: "Auto-post to multiple platforms"},
				{Name: "n8n", Purpose: "Open-source automation alternative"},
			},
		},
	},
	model.LanguageHindi: {
		{
			Category: "🎬 वीडियो निर्माण और संपादन",
			Tools: []model.Tool{
				{Name: "Pictory.ai", Purpose: "स्क्रिप्ट से स्वचालित वीडियो बनाएं"},
				{Name: "CapCut", Purpose: "ऑटो-कैप्शन, ट्रेंडिंग टेम्पलेट"},
				{Name: "Runway ML", Purpose: "AI वीडियो प्रभाव"},
			},
		},
		{
			Category: "🎙️ वॉइसओवर और ऑडियो",
			Tools: []model.Tool{
				{Name: "ElevenLabs", Purpose: "यथार्थवादी AI वॉइसओवर हिंदी में"},
				{Name: "Murf.ai", Purpose: "पेशेवर वॉइसओवर"},
			},
		},
		{
			Category: "📝 स्क्रिप्ट लेखन",
			Tools: []model.Tool{
				{Name: "ChatGPT", Purpose: "पूर्ण स्क्रिप्ट, शीर्षक, विवरण"},
				{Name: "Copy.ai", Purpose: "एकाधिक विविधताएं"},
			},
		},
	},
	model.LanguageEnglish: {
		{
			Category: "🎬 Video Creation & Editing",
			Tools: []model.Tool{
				{Name: "Pictory.ai", Purpose: "Auto-create videos from scripts with stock footage"},
				{Name: "Descript", Purpose: "Text-based editing, auto remove filler words"},
				{Name: "CapCut Desktop", Purpose: "Auto-captions, trending templates, batch editing"},
				{Name: "Runway ML", Purpose: "AI video effects, background removal"},
			},
		},
		{
			Category: "🎙️ Voiceover & Audio",
			Tools: []model.Tool{
				{Name: "ElevenLabs", Purpose: "Ultra-realistic AI voiceover"},
				{Name: "Murf.ai", Purpose: "Professional voiceovers, multiple accents"},
				{Name: "Adobe Podcast AI", Purpose: "Audio cleanup, noise removal"},
			},
		},
		{
			Category: "📝 Script & Content Writing",
			Tools: []model.Tool{
				{Name: "ChatGPT/Claude", Purpose: "Full scripts, hooks, titles, descriptions"},
				{Name: "Copy.ai", Purpose: "Multiple variations, A/B testing"},
			},
		},
		{
			Category: "🎨 Thumbnails & Graphics",
			Tools: []model.Tool{
				{Name: "Canva Pro", Purpose: "AI thumbnail templates"},
				{Name: "Thumbly.ai", Purpose: "AI thumbnail generator for YouTube"},
				{Name: "Remove.bg", Purpose: "Background removal"},
			},
		},
		{
			Category: "🔍 Research & Analytics",
			Tools: []model.Tool{
				{Name: "VidIQ", Purpose: "Keywords, trends, competitor analysis"},
				{Name: "TubeBuddy", Purpose: "SEO, posting times, A/B testing"},
				{Name: "Google Trends", Purpose: "Trending topics by region"},
			},
		},
	},
}

// ==================== 全流程工作流 ====================

var workflows = map[model.Language]string{
	model.LanguageHinglish: `├─ COMPLETE AUTOMATION WORKFLOW:
│
├─ Step 1: Research & Planning (10 min)
│   • VidIQ/TubeBuddy se trending topics find karo
│   • Google Trends check karo for niche
│   • Competitor analysis karo (top 3-5 videos dekho)
│   • Best performing format identify karo
│
├─ Step 2: Content Generation (20 min)
│   • ChatGPT/Claude se script generate karo
│   • 3 title variations banao
│   • 3 hook variations banao
│   • Tags aur hashtags generate karo
│   • Description ready karo
│
├─ Step 3: Voiceover Creation (15 min)
│   • Script ko ElevenLabs mein paste karo
│   • Voice select karo (male/female, accent)
│   • Generate and download MP3
│   • Adobe Podcast AI se cleanup (optional)
│
├─ Step 4: Video Production (30-60 min)
│   FOR SHORTS:
│   • Pictory.ai mein script paste karo
│   • 9:16 aspect ratio select karo
│   • Auto-generate with stock footage
│   • CapCut mein final edits:
│     - Auto-captions add karo
│     - Trending transitions
│     - Sound effects
│     - Color grading preset
│
│   FOR LONG-FORM:
│   • Main footage shoot karo ya screen record
│   • Descript mein import (auto-transcription)
│   • Text-based editing se filler words remove
│   • B-roll add karo from Pexels/Pixabay
│   • Music add karo (YouTube Audio Library)
│
├─ Step 5: Thumbnail Creation (10 min)
│   • Canva mein YouTube Thumbnail template open karo
│   • Face photo upload (exaggerated expression)
│   • Bold text add (3-4 words max):
│     - Font: Bold, readable
│     - Colors: Bright (Red/Yellow/Blue)
│   • Elements add (arrows, emojis, circles)
│   • Download as PNG (1280x720)
│
├─ Step 6: SEO Optimization (5 min)
│   • Title: 60-70 characters
│   • Description:
│     - First 2 lines mein hook
│     - Timestamps add karo
│     - Links (social media, products)
│     - Hashtags bottom mein
│   • Tags: 10-15 relevant tags
│   • Category select
│   • Thumbnail upload
│
├─ Step 7: Scheduling & Publishing (5 min)
│   • YouTube Studio mein upload
│   • Best time select (6-9 AM / 6-10 PM)
│   • Playlist mein add karo
│   • End screen & cards setup
│   • Schedule ya Publish
│
├─ Step 8: Cross-Platform Distribution (10 min)
│   • Instagram Reels mein post karo (repurpose Shorts)
│   • TikTok upload (same content)
│   • Pinterest mein pin (thumbnail + link)
│   • Twitter/X pe announce karo with clip
│   • Buffer/Hootsuite se automate karo
│
├─ Step 9: Analytics & Iteration (Daily 10 min)
│   • YouTube Analytics check:
│     - CTR (aim for 8-10%+)
│     - AVD (Average View Duration)
│     - Traffic sources
│   • Top performing content identify
│   • Remake high performers
│   • A/B test thumbnails aur titles
│
├─ ADVANCED AUTOMATION (Make.com/Zapier):
│   • Trigger: New trending topic in VidIQ
│   • Action 1: Generate script via ChatGPT API
│   • Action 2: Create voiceover via ElevenLabs API
│   • Action 3: Auto-generate video via Pictory API
│   • Action 4: Auto-create thumbnail via Canva API
│   • Action 5: Schedule upload via YouTube API
│   • Action 6: Post to Instagram/TikTok
│
├─ COST BREAKDOWN (Monthly):
│   • Free tier possible: $0
│   • Budget setup: $50-100
│     - ChatGPT Plus: $20
│     - ElevenLabs: $5-22
│     - Canva Pro: $13
│     - VidIQ: $7.50-39
│     - CapCut: Free
│   • Professional: $200-300
│     - Add Pictory, Descript, premium tools
│
├─ TIME INVESTMENT:
│   • Initial setup: 2-3 hours
│   • Per video (manual): 2-3 hours
│   • Per video (semi-automated): 1 hour
│   • Per video (fully automated): 15-30 min
│
└─ PRO TIP: Start manual, then automate step-by-step! 🚀`,
	model.LanguageHindi: `├─ संपूर्ण स्वचालन वर्कफ्लो:
│
├─ चरण 1: अनुसंधान और योजना (10 मिनट)
│   • VidIQ से ट्रेंडिंग विषय खोजें
│   • Google Trends जांचें
│   • प्रतियोगी विश्लेषण करें
│
├─ चरण 2: सामग्री निर्माण (20 मिनट)
│   • ChatGPT से स्क्रिप्ट बनाएं
│   • 3 शीर्षक विविधताएं
│   • टैग और हैशटैग
│
├─ चरण 3: वॉइसओवर (15 मिनट)
│   • ElevenLabs में स्क्रिप्ट
│   • आवाज़ चुनें
│   • डाउनलोड करें
│
├─ चरण 4: वीडियो उत्पादन (30-60 मिनट)
│   • Pictory.ai में स्क्रिप्ट
│   • CapCut में संपादन
│   • ऑटो-कैप्शन जोड़ें
│
├─ चरण 5: थंबनेल (10 मिनट)
│   • Canva में टेम्पलेट
│   • बोल्ड टेक्स्ट
│   • चमकीले रंग
│
├─ चरण 6: SEO अनुकूलन (5 मिनट)
│   • शीर्षक, विवरण, टैग
│
├─ चरण 7: शेड्यूलिंग (5 मिनट)
│   • YouTube Studio में अपलोड
│
└─ सुझाव: धीरे-धीरे स्वचालित करें! 🚀`,
	model.LanguageEnglish: `├─ COMPLETE AUTOMATION WORKFLOW:
│
├─ Step 1: Research & Planning (10 min)
│   • Find trending topics via VidIQ/TubeBuddy
│   • Check Google Trends for niche
│   • Analyze top competitors
│
├─ Step 2: Content Generation (20 min)
│   • Generate script with ChatGPT/Claude
│   • Create 3 title variations
│   • Generate hooks, tags, hashtags
│   • Prepare description
│
├─ Step 3: Voiceover Creation (15 min)
│   • Paste script in ElevenLabs
│   • Select voice and accent
│   • Generate and download
│
├─ Step 4: Video Production (30-60 min)
│   SHORTS:
│   • Paste script in Pictory.ai
│   • 9:16 aspect ratio
│   • Auto-generate with stock footage
│   • Final edits in CapCut
│
│   LONG-FORM:
│   • Record main footage
│   • Import to Descript
│   • Remove filler words
│   • Add B-roll from Pexels
│
├─ Step 5: Thumbnail Creation (10 min)
│   • Use Canva template
│   • Add expressive face photo
│   • Bold text (3-4 words)
│   • Bright colors
│
├─ Step 6: SEO Optimization (5 min)
│   • Title: 60-70 characters
│   • Description with hook
│   • 10-15 relevant tags
│
├─ Step 7: Schedule & Publish (5 min)
│   • Upload to YouTube Studio
│   • Select best posting time
│   • Add to playlist
│
├─ Step 8: Cross-Platform (10 min)
│   • Post to Instagram Reels
│   • Upload to TikTok
│   • Share on other platforms
│
├─ Step 9: Analytics (Daily 10 min)
│   • Check CTR, AVD
│   • Identify top performers
│   • A/B test thumbnails
│
└─ PRO TIP: Automate gradually! 🚀`,
}
