package seed

type characterSeed struct {
	Name        string
	Description string
	Category    string
	Biography   string
}

type philosophySeed struct {
	Name        string
	Description string
}

type quoteSeed struct {
	Text     string
	Author   string
	Category string
}

var defaultCharacters = []characterSeed{
	// Ancient Western philosophers
	{"Marcus Aurelius", "Stoic Emperor", "philosophy", "Roman emperor and philosopher (121-180 CE) known for his 'Meditations', embodying the Stoic ideal of the philosopher-king."},
	{"Socrates", "Father of Western Philosophy", "philosophy", "Ancient Greek philosopher (470-399 BCE) who established critical thinking as the foundation for truth-seeking through dialectical method."},

	// Eastern spiritual masters
	{"Buddha (Siddhartha Gautama)", "The Awakened One", "spirituality", "Founder of Buddhism (563-483 BCE), taught the Middle Way and the Four Noble Truths for liberation from suffering."},
	{"Lao Tzu", "Father of Taoism", "spirituality", "Ancient Chinese philosopher (6th century BCE) who founded Taoism, emphasizing natural harmony and wu wei (effortless action)."},
	{"Confucius", "Great Teacher", "philosophy", "Chinese philosopher (551-479 BCE) whose teachings on ethics, morality, and social harmony shaped East Asian culture for millennia."},

	// Persian mystic poets
	{"Rumi", "Mystic Poet of Divine Love", "spirituality", "13th-century Persian mystic poet whose verses on divine love and spiritual union remain globally influential across cultures."},
	{"Hafez", "The Tongue of the Invisible", "spirituality", "14th-century Persian Sufi poet whose ghazals beautifully interweave earthly love with mystical spiritual truths."},
	{"Ibn Arabi", "The Greatest Master", "spirituality", "13th-century Andalusian mystic philosopher who developed the doctrine of Unity of Being, influencing both Islamic and Western mysticism."},

	// American transcendentalists
	{"Ralph Waldo Emerson", "Sage of Concord", "philosophy", "American transcendentalist philosopher (1803-1882) who emphasized self-reliance, individualism, and the inherent divinity of nature."},
	{"Henry David Thoreau", "Nature's Prophet", "philosophy", "American philosopher and naturalist (1817-1862) whose 'Walden' inspired environmentalism and civil disobedience movements."},

	// Indian spiritual teachers
	{"Sadhguru", "Modern Mystic", "contemporary", "Contemporary Indian guru and founder of Isha Foundation, bringing ancient yogic wisdom to global audiences through practical spirituality."},
	{"Jiddu Krishnamurti", "World Teacher", "contemporary", "20th-century philosopher (1895-1986) who emphasized individual inquiry, freedom from conditioning, and direct perception of truth."},

	// Contemporary spiritual teachers
	{"Eckhart Tolle", "Teacher of Presence", "contemporary", "German-born spiritual teacher known for 'The Power of Now', bridging ancient wisdom with modern consciousness awakening."},
	{"Joe Dispenza", "Science of Transformation", "contemporary", "American neuroscientist and author who combines quantum physics, neuroscience, and ancient wisdom to explain human potential."},
	{"Alan Watts", "Bridge Between East and West", "contemporary", "British philosopher (1915-1973) who popularized Eastern philosophy for Western audiences, making Zen and Taoism accessible."},

	// Buddhist masters
	{"Thich Nhat Hanh", "Father of Mindfulness", "contemporary", "Vietnamese Zen master (1926-2022) who brought mindfulness to the West and pioneered engaged Buddhism for social change."},
	{"Dalai Lama", "Ocean of Wisdom", "contemporary", "14th Dalai Lama, Nobel Peace Prize laureate advocating compassion, non-violence, and the integration of science with spirituality."},

	// Transformational figures
	{"Viktor Frankl", "Logotherapist", "psychology", "Holocaust survivor and psychologist (1905-1997) who developed logotherapy, demonstrating that meaning-making is humanity's primary drive."},
	{"Ram Dass", "Consciousness Explorer", "contemporary", "American spiritual teacher (1931-2019) whose 'Be Here Now' became a cornerstone of Western spiritual awakening and psychedelic spirituality."},
	{"Maya Angelou", "Phenomenal Woman", "literature", "American poet and civil rights activist (1928-2014) whose autobiographical works inspire resilience, dignity, and the power of storytelling."},
}

var defaultPhilosophies = []philosophySeed{
	{"Stoicism", "Ancient Greek philosophy emphasizing virtue, wisdom, and emotional resilience through rational thought and acceptance of what we cannot control."},
	{"Existentialism", "Modern philosophy emphasizing individual existence, freedom, and choice in creating authentic meaning in an apparently meaningless universe."},
	{"Neo-Platonism", "Late ancient philosophy viewing reality as emanation from 'The One' through multiple levels, emphasizing contemplative return to unity."},
	{"Transcendentalism", "19th-century American movement emphasizing inherent goodness of people and nature, individual intuition, and social reform."},
	{"Buddhism", "Ancient teaching focused on mindfulness, compassion, and liberation from suffering through the Eightfold Path and meditation."},
	{"Zen Buddhism", "Direct insight tradition emphasizing meditation practice, present-moment awareness, and awakening to Buddha-nature beyond concepts."},
	{"Vipassana-Dhamma", "Buddhist meditation practice for developing clear insight into reality through systematic observation of impermanence and non-self."},
	{"Taoism", "Chinese philosophy emphasizing harmony with the natural order, wu wei (effortless action), and the balance of yin-yang."},
	{"Advaita Vedanta", "Non-dualist Hindu philosophy teaching that individual consciousness (Atman) and universal consciousness (Brahman) are one."},
	{"Kashmir Shaivism", "Tantric tradition viewing the world as real divine play of Shiva-Shakti consciousness, emphasizing dynamic spiritual practice."},
	{"Yogic Wisdom", "Ancient Indian system integrating physical, mental, and spiritual practices for self-realization and unity consciousness."},
	{"Vedanta", "Hindu philosophical tradition exploring the nature of reality, consciousness, and the path to liberation through knowledge."},
	{"Sufism", "Islamic mystical tradition emphasizing direct personal experience of divine love through purification of the heart and remembrance."},
	{"Christian Mysticism", "Contemplative tradition seeking direct, experiential union with God through prayer, meditation, and surrender of the ego."},
	{"Kabbalah", "Jewish mystical tradition exploring hidden dimensions of reality through the Tree of Life and direct experience of divine emanation."},
	{"Humanism", "Philosophy emphasizing human dignity, potential for flourishing, and ethical living through reason, compassion, and personal growth."},
	{"Positive Psychology", "Scientific study of human flourishing, focusing on strengths, virtues, and factors that contribute to meaningful, fulfilling life."},
	{"Integral Philosophy", "Comprehensive framework integrating multiple perspectives and developmental stages to understand consciousness and reality holistically."},
	{"Mindfulness Movement", "Modern adaptation of ancient meditation practices emphasizing present-moment awareness for healing, growth, and awakening."},
	{"New Thought Movement", "Spiritual philosophy emphasizing the power of positive thinking, mental science, and the creative potential of consciousness."},
}

var defaultQuotes = []quoteSeed{
	{"The happiness of your life depends upon the quality of your thoughts.", "Marcus Aurelius", "mindset"},
	{"What we think, we become.", "Buddha (Siddhartha Gautama)", "consciousness"},
	{"The only true wisdom is in knowing you know nothing.", "Socrates", "wisdom"},
	{"Let yourself be silently drawn by the strange pull of what you really love. It will not lead you astray.", "Rumi", "passion"},
	{"Everything can be taken from a man but one thing: the last of human freedoms - to choose one's attitude in any given set of circumstances.", "Viktor Frankl", "freedom"},
	{"If you don't like something, change it. If you can't change it, change your attitude.", "Maya Angelou", "empowerment"},
	{"You have power over your mind - not outside events. Realize this, and you will find strength.", "Marcus Aurelius", "control"},
	{"Peace comes from within. Do not seek it without.", "Buddha (Siddhartha Gautama)", "peace"},
	{"The way is not in the sky. The way is in the heart.", "Buddha (Siddhartha Gautama)", "wisdom"},
	{"Yesterday I was clever, so I wanted to change the world. Today I am wise, so I am changing myself.", "Rumi", "growth"},
}

// authorPhilosophies links quote authors to the tradition their quotes are filed under.
var authorPhilosophies = map[string]string{
	"Marcus Aurelius": "Stoicism",
	"Buddha":          "Buddhism",
}
