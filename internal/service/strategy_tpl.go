package service

import (
	"strings"
	"text/template"

	"yt_agent_v1_202610/internal/model"
)

// ==================== 模板基础设施 ====================

// tplData 模板渲染数据
type tplData struct {
	Niche    string
	Language model.Language
}

// tplFuncs 模板函数
//   - lower:   转小写，用于标签
//   - compact: 去掉所有空白，用于 #话题
var tplFuncs = template.FuncMap{
	"lower":   strings.ToLower,
	"compact": compactNiche,
}

// compactNiche 删除所有空白字符
func compactNiche(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// mustTpl 解析模板，启动时失败直接 panic
func mustTpl(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(tplFuncs).Option("missingkey=error").Parse(text))
}

// scriptTpl 脚本模板
type scriptTpl struct {
	Type    string
	Content *template.Template
}

// ==================== 热门选题 ====================

// 选题标题与语言无关
var trendingTitleTpls = []*template.Template{
	mustTpl("trending.0", `{{.Niche}} - Latest Trend 2024`),
	mustTpl("trending.1", `{{.Niche}} Secrets Nobody Tells You`),
	mustTpl("trending.2", `{{.Niche}} in 60 Seconds | Quick Guide`),
}

var trendingViralities = []model.Virality{
	model.ViralityHigh,
	model.ViralityHigh,
	model.ViralityMedium,
}

var trendingReasons = map[model.Language][]string{
	model.LanguageHinglish: {
		"Current trending topic hai with high search volume aur engagement potential",
		"Mystery aur curiosity create karta hai, click-through rate high hota hai",
		"Shorts format ke liye perfect, quick consumption content",
	},
	model.LanguageHindi: {
		"वर्तमान ट्रेंडिंग टॉपिक है उच्च सर्च वॉल्यूम के साथ",
		"रहस्य और जिज्ञासा पैदा करता है, उच्च क्लिक-थ्रू रेट",
		"शॉर्ट्स फॉर्मेट के लिए परफेक्ट, त्वरित सामग्री",
	},
	model.LanguageEnglish: {
		"Current trending topic with high search volume and engagement potential",
		"Creates mystery and curiosity, high click-through rate",
		"Perfect for Shorts format, quick consumption content",
	},
}

// ==================== SEO 标题 ====================

var titleTpls = map[model.Language][]*template.Template{
	model.LanguageHinglish: {
		mustTpl("title.hinglish.0", `🔥 {{.Niche}} Ka Sach! Ye Video Dekhne Se Pehle {{.Niche}} Mat Karna | Shocking Truth Revealed`),
		mustTpl("title.hinglish.1", `💯 {{.Niche}} Kaise Kare in 2024? | Step-by-Step Guide Hindi | {{.Niche}} Tutorial`),
		mustTpl("title.hinglish.2", `⚡ {{.Niche}} Se Paise Kamao | {{.Niche}} Tips & Tricks | Full Guide in Hindi`),
	},
	model.LanguageHindi: {
		mustTpl("title.hindi.0", `🔥 {{.Niche}} की सच्चाई! यह वीडियो देखने से पहले {{.Niche}} मत करना`),
		mustTpl("title.hindi.1", `💯 {{.Niche}} कैसे करें 2024 में? | संपूर्ण गाइड हिंदी में`),
		mustTpl("title.hindi.2", `⚡ {{.Niche}} से पैसे कमाएं | {{.Niche}} टिप्स और ट्रिक्स`),
	},
	model.LanguageEnglish: {
		mustTpl("title.english.0", `🔥 {{.Niche}} EXPOSED! Don't Try {{.Niche}} Before Watching This | Shocking Truth`),
		mustTpl("title.english.1", `💯 How to Master {{.Niche}} in 2024? | Complete Step-by-Step Guide`),
		mustTpl("title.english.2", `⚡ Make Money With {{.Niche}} | {{.Niche}} Tips & Tricks | Ultimate Guide`),
	},
}

// ==================== 开场钩子 ====================

var hookTpls = map[model.Language][]*template.Template{
	model.LanguageHinglish: {
		mustTpl("hook.hinglish.0", `"Agar aapne {{.Niche}} galat tarike se kiya, toh ye video aapki life change kar dega!"`),
		mustTpl("hook.hinglish.1", `"Maine {{.Niche}} mein ye mistake ki aur sab kuch barbaad ho gaya... par aap mat karna!"`),
		mustTpl("hook.hinglish.2", `"{{.Niche}} ka ye secret jaanne ke baad aap shocked reh jaoge!"`),
	},
	model.LanguageHindi: {
		mustTpl("hook.hindi.0", `"अगर आपने {{.Niche}} गलत तरीके से किया, तो यह वीडियो आपकी ज़िंदगी बदल देगा!"`),
		mustTpl("hook.hindi.1", `"मैंने {{.Niche}} में यह गलती की और सब कुछ बर्बाद हो गया... पर आप मत करना!"`),
		mustTpl("hook.hindi.2", `"{{.Niche}} का यह रहस्य जानने के बाद आप चौंक जाएंगे!"`),
	},
	model.LanguageEnglish: {
		mustTpl("hook.english.0", `"If you're doing {{.Niche}} wrong, this video will change your life!"`),
		mustTpl("hook.english.1", `"I made this {{.Niche}} mistake and lost everything... don't let it happen to you!"`),
		mustTpl("hook.english.2", `"This {{.Niche}} secret will shock you!"`),
	},
}

// ==================== 视频脚本 ====================

var scriptTpls = map[model.Language][]scriptTpl{
	model.LanguageHinglish: {
		{
			Type: "Short-Form Script (30-60 sec)",
			Content: mustTpl("script.hinglish.short", `├─ HOOK (0-3 sec)
"{{.Niche}} kar rahe ho? Ye mistake mat karna!"

├─ PROBLEM (3-8 sec)
"Zyada log {{.Niche}} mein ye galti karte hain aur fail ho jate hain"

├─ SOLUTION (8-25 sec)
"Par main aapko bataunga ek secret technique jo actually kaam karti hai:
• Step 1: [Specific action]
• Step 2: [Specific action]
• Step 3: [Result]"

├─ CTA (25-30 sec)
"Agar aur tips chahiye toh follow karo aur like kardo! 🔥"

├─ Visual Cues:
• Fast cuts har 2-3 seconds
• Text overlays for key points
• Trending audio in background`),
		},
		{
			Type: "Long-Form Script (8-12 min)",
			Content: mustTpl("script.hinglish.long", `├─ INTRO (0-30 sec)
"Namaste doston! Aaj hum baat karenge {{.Niche}} ke baare mein jo sabko jaanna chahiye"
[Show face/logo, energetic intro]

├─ HOOK EXTENSION (30-90 sec)
"Pichle 5 saalon mein maine {{.Niche}} ko deeply study kiya aur jo mujhe pata chala, wo aap sabke saath share karunga"

├─ MAIN CONTENT (90 sec - 10 min)
Section 1: Problem identification
Section 2: Deep dive into solution
Section 3: Step-by-step implementation
Section 4: Common mistakes to avoid
Section 5: Pro tips and hacks

├─ OUTRO (10-12 min)
"Toh doston ye thi complete guide {{.Niche}} ki. Agar helpful laga toh:
• Like karo
• Subscribe karo
• Comment mein batao kya seekha
• Next video mein milte hain!"

├─ End Screen:
• Next video thumbnail
• Subscribe button
• Best video of channel`),
		},
		{
			Type: "Shorts/Reels Script (15 sec)",
			Content: mustTpl("script.hinglish.shorts", `├─ HOOK (0-1 sec)
"{{.Niche}} ka secret?!"
[Quick zoom in]

├─ RAPID VALUE (1-12 sec)
Fast-paced 3 tips:
"1. [Tip ek]
2. [Tip do]
3. [Tip teen]"
[Text overlay each tip]

├─ CTA (12-15 sec)
"Save this! Follow for more! 💪"
[Point to follow button]`),
		},
	},
	model.LanguageHindi: {
		{
			Type: "शॉर्ट-फॉर्म स्क्रिप्ट (30-60 सेकंड)",
			Content: mustTpl("script.hindi.short", `├─ हुक (0-3 सेकंड)
"{{.Niche}} कर रहे हो? यह गलती मत करना!"

├─ समस्या (3-8 सेकंड)
"अधिकतर लोग {{.Niche}} में यह गलती करते हैं"

├─ समाधान (8-25 सेकंड)
"पर मैं आपको बताऊंगा एक विशेष तकनीक:
• चरण 1: [विशिष्ट कार्य]
• चरण 2: [विशिष्ट कार्य]
• चरण 3: [परिणाम]"

├─ CTA (25-30 सेकंड)
"अधिक टिप्स चाहिए तो फॉलो करें! 🔥"`),
		},
		{
			Type: "लॉन्ग-फॉर्म स्क्रिप्ट (8-12 मिनट)",
			Content: mustTpl("script.hindi.long", `├─ परिचय (0-30 सेकंड)
"नमस्ते दोस्तों! आज हम बात करेंगे {{.Niche}} के बारे में"

├─ मुख्य सामग्री (90 सेकंड - 10 मिनट)
खंड 1: समस्या की पहचान
खंड 2: समाधान का विस्तार
खंड 3: चरण-दर-चरण कार्यान्वयन
खंड 4: सामान्य गलतियाँ
खंड 5: प्रो टिप्स

├─ समापन (10-12 मिनट)
"तो दोस्तों यह थी {{.Niche}} की पूर्ण गाइड!"`),
		},
		{
			Type: "शॉर्ट्स स्क्रिप्ट (15 सेकंड)",
			Content: mustTpl("script.hindi.shorts", `├─ हुक (0-1 सेकंड)
"{{.Niche}} का रहस्य?!"

├─ तेज़ मूल्य (1-12 सेकंड)
3 टिप्स तेज़ी से

├─ CTA (12-15 सेकंड)
"सेव करें! फॉलो करें! 💪"`),
		},
	},
	model.LanguageEnglish: {
		{
			Type: "Short-Form Script (30-60 sec)",
			Content: mustTpl("script.english.short", `├─ HOOK (0-3 sec)
"Doing {{.Niche}}? Don't make this mistake!"

├─ PROBLEM (3-8 sec)
"Most people fail at {{.Niche}} because of this"

├─ SOLUTION (8-25 sec)
"Here's the secret technique that actually works:
• Step 1: [Specific action]
• Step 2: [Specific action]
• Step 3: [Result]"

├─ CTA (25-30 sec)
"Follow for more tips! 🔥"

├─ Visual Cues:
• Fast cuts every 2-3 seconds
• Text overlays for key points
• Trending audio`),
		},
		{
			Type: "Long-Form Script (8-12 min)",
			Content: mustTpl("script.english.long", `├─ INTRO (0-30 sec)
"Hey everyone! Today we're diving deep into {{.Niche}}"

├─ MAIN CONTENT (90 sec - 10 min)
Section 1: Problem identification
Section 2: Deep dive solution
Section 3: Step-by-step guide
Section 4: Common mistakes
Section 5: Pro tips

├─ OUTRO (10-12 min)
"That's the complete {{.Niche}} guide! If helpful:
• Hit like
• Subscribe
• Comment what you learned"`),
		},
		{
			Type: "Shorts/Reels Script (15 sec)",
			Content: mustTpl("script.english.shorts", `├─ HOOK (0-1 sec)
"{{.Niche}} secret?!"

├─ RAPID VALUE (1-12 sec)
3 quick tips

├─ CTA (12-15 sec)
"Save this! Follow for more! 💪"`),
		},
	},
}

// ==================== 画面与剪辑 ====================

var visualPlanTpls = map[model.Language]*template.Template{
	model.LanguageHinglish: mustTpl("visual.hinglish", `├─ Visuals Strategy:
│
├─ B-Roll Footage Needed:
│   • {{.Niche}} ka live demonstration
│   • Close-up shots of key elements
│   • Before/After comparison shots
│   • Motion graphics for statistics
│
├─ Editing Style:
│   • Fast-paced cuts (har 2-3 seconds)
│   • Trending transitions (whoosh, zoom)
│   • Color grading: Vibrant & high contrast
│   • Text animations: Bold, readable
│
├─ On-Screen Elements:
│   • Lower thirds for important points
│   • Progress bars/checklists
│   • Emoji reactions
│   • Call-to-action overlays
│
├─ Music/Audio:
│   • Copyright-free trending audio
│   • Sound effects for emphasis
│   • Background music: Upbeat, energetic
│
├─ Thumbnail Design:
│   • Face with exaggerated expression
│   • Bold text: "{{.Niche}}" in Hindi/English
│   • Bright colors (Red, Yellow, Blue)
│   • 3-4 words maximum
│
├─ Tools to Use:
│   • Editing: CapCut, Adobe Premiere, DaVinci Resolve
│   • Thumbnail: Canva, Photoshop
│   • Stock footage: Pexels, Pixabay, Envato`),
	model.LanguageHindi: mustTpl("visual.hindi", `├─ विजुअल रणनीति:
│
├─ B-Roll फुटेज आवश्यक:
│   • {{.Niche}} का लाइव प्रदर्शन
│   • महत्वपूर्ण तत्वों के क्लोज-अप
│   • पहले/बाद की तुलना
│
├─ एडिटिंग शैली:
│   • तेज़ कट्स (हर 2-3 सेकंड)
│   • ट्रेंडिंग ट्रांजिशन
│   • रंग ग्रेडिंग: जीवंत और उच्च कंट्रास्ट
│
├─ ऑन-स्क्रीन तत्व:
│   • महत्वपूर्ण बिंदुओं के लिए टेक्स्ट
│   • इमोजी प्रतिक्रियाएं
│
├─ उपयोग करने के लिए टूल:
│   • एडिटिंग: CapCut, Premiere Pro
│   • थंबनेल: Canva, Photoshop`),
	model.LanguageEnglish: mustTpl("visual.english", `├─ Visual Strategy:
│
├─ B-Roll Footage:
│   • Live {{.Niche}} demonstration
│   • Close-up shots
│   • Before/After comparisons
│   • Motion graphics
│
├─ Editing Style:
│   • Fast-paced cuts (2-3 seconds)
│   • Trending transitions
│   • High contrast color grading
│   • Bold text animations
│
├─ On-Screen Elements:
│   • Lower thirds
│   • Progress indicators
│   • Emoji reactions
│   • CTA overlays
│
├─ Music/Audio:
│   • Trending copyright-free audio
│   • Sound effects
│   • Upbeat background music
│
├─ Thumbnail Design:
│   • Expressive face
│   • Bold text: "{{.Niche}}"
│   • Bright colors
│   • 3-4 words max
│
├─ Tools:
│   • Editing: CapCut, Premiere Pro
│   • Thumbnail: Canva, Photoshop
│   • Stock: Pexels, Pixabay`),
}

// ==================== 标签 ====================

// YouTube 标签全部基于小写 niche
var youtubeTagTpls = []*template.Template{
	mustTpl("tag.youtube.0", `{{lower .Niche}}`),
	mustTpl("tag.youtube.1", `{{lower .Niche}} tutorial`),
	mustTpl("tag.youtube.2", `{{lower .Niche}} guide`),
	mustTpl("tag.youtube.3", `{{lower .Niche}} tips`),
	mustTpl("tag.youtube.4", `{{lower .Niche}} 2024`),
	mustTpl("tag.youtube.5", `how to {{lower .Niche}}`),
	mustTpl("tag.youtube.6", `{{lower .Niche}} for beginners`),
	mustTpl("tag.youtube.7", `{{lower .Niche}} hindi`),
	mustTpl("tag.youtube.8", `{{lower .Niche}} explained`),
	mustTpl("tag.youtube.9", `best {{lower .Niche}}`),
}

// Shorts 话题只有第一个和第九个是动态的
var shortsTagTpls = []*template.Template{
	mustTpl("tag.shorts.0", `#{{lower .Niche | compact}}`),
	mustTpl("tag.shorts.1", `#shorts`),
	mustTpl("tag.shorts.2", `#viral`),
	mustTpl("tag.shorts.3", `#trending`),
	mustTpl("tag.shorts.4", `#reels`),
	mustTpl("tag.shorts.5", `#youtubeshorts`),
	mustTpl("tag.shorts.6", `#fyp`),
	mustTpl("tag.shorts.7", `#explore`),
	mustTpl("tag.shorts.8", `{{if .Language.UsesHindi}}#hindiviral{{else}}#viralvideo{{end}}`),
	mustTpl("tag.shorts.9", `#tips`),
	mustTpl("tag.shorts.10", `#tricks`),
	mustTpl("tag.shorts.11", `#howto`),
}

// ==================== 视频简介 ====================

var descriptionTpls = map[model.Language]*template.Template{
	model.LanguageHinglish: mustTpl("description.hinglish", `🔥 {{.Niche}} Ki Complete Guide - Ye Video Dekhne Se Pehle Skip Mat Karna!

Is video mein maine {{.Niche}} ke bare mein SABKUCH detail se explain kiya hai jo aapko pata hona chahiye. Agar aap {{.Niche}} mein interested ho, toh ye video aapke liye game-changer hoga! 🚀

📌 TIMESTAMPS:
0:00 - Introduction
0:30 - {{.Niche}} Kya Hai?
2:00 - Step-by-Step Guide
5:00 - Common Mistakes
7:00 - Pro Tips & Tricks
10:00 - Conclusion & Next Steps

💡 KEY TAKEAWAYS:
✅ [Point 1]
✅ [Point 2]
✅ [Point 3]

🔗 USEFUL LINKS:
• Resource 1: [Link]
• Resource 2: [Link]
• Tool Recommendation: [Link]

📱 CONNECT WITH ME:
Instagram: [Your Handle]
Twitter: [Your Handle]
Discord/Telegram: [Community Link]

🎯 RECOMMENDED VIDEOS:
• [Related Video 1]
• [Related Video 2]

🛠️ TOOLS MENTIONED:
1. [Tool Name] - [Purpose]
2. [Tool Name] - [Purpose]

⭐ AGAR VIDEO HELPFUL LAGA TOH:
• LIKE karo (helps the algorithm!)
• SHARE karo apne friends ke saath
• SUBSCRIBE karo for more amazing content
• COMMENT mein batao - Aapka kya experience hai {{.Niche}} ke saath?

🔔 Bell icon daba do taaki aap koi video miss na karo!

📧 Business Inquiries: [Your Email]

#{{compact .Niche}} #Tutorial #Hindi #HowTo #Guide #Tips #Tricks #2024 #Viral #Trending

---
© 2024 [Your Channel Name]. All Rights Reserved.`),
	model.LanguageHindi: mustTpl("description.hindi", `🔥 {{.Niche}} की संपूर्ण गाइड - यह वीडियो छोड़ें नहीं!

इस वीडियो में मैंने {{.Niche}} के बारे में सब कुछ विस्तार से समझाया है। 🚀

📌 टाइमस्टैम्प:
0:00 - परिचय
0:30 - {{.Niche}} क्या है?
2:00 - चरण-दर-चरण गाइड
5:00 - सामान्य गलतियां
7:00 - प्रो टिप्स
10:00 - निष्कर्ष

💡 मुख्य बिंदु:
✅ [बिंदु 1]
✅ [बिंदु 2]
✅ [बिंदु 3]

🔗 उपयोगी लिंक:
• संसाधन 1: [लिंक]
• संसाधन 2: [लिंक]

📱 मुझसे जुड़ें:
Instagram: [आपका हैंडल]
Twitter: [आपका हैंडल]

⭐ अगर वीडियो उपयोगी लगा तो:
• लाइक करें
• शेयर करें
• सब्सक्राइब करें
• कमेंट में बताएं

#{{compact .Niche}} #हिंदी #गाइड #ट्यूटोरियल`),
	model.LanguageEnglish: mustTpl("description.english", `🔥 Complete {{.Niche}} Guide - Don't Skip This Video!

In this video, I've explained EVERYTHING you need to know about {{.Niche}} in detail. If you're interested in {{.Niche}}, this will be a game-changer! 🚀

📌 TIMESTAMPS:
0:00 - Introduction
0:30 - What is {{.Niche}}?
2:00 - Step-by-Step Guide
5:00 - Common Mistakes
7:00 - Pro Tips & Tricks
10:00 - Conclusion

💡 KEY TAKEAWAYS:
✅ [Point 1]
✅ [Point 2]
✅ [Point 3]

🔗 USEFUL LINKS:
• Resource 1: [Link]
• Resource 2: [Link]

📱 CONNECT WITH ME:
Instagram: [Handle]
Twitter: [Handle]

⭐ IF YOU FOUND THIS HELPFUL:
• LIKE this video
• SHARE with friends
• SUBSCRIBE for more
• COMMENT your experience

🔔 Turn on notifications!

#{{compact .Niche}} #Tutorial #Guide #HowTo #Tips #2024`),
}
