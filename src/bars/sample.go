package bars

// SampleLyrics is a demo song used by the API sample endpoint and the
// bot's sample command, so users can try the analyzer without writing
// their own bars.
const SampleLyrics = `[Verse 1]
I'm in the studio, cooking up the heat
Every bar I spit, got the crowd on their feet
Metaphors so deep, they can't compete
Wordplay so fresh, it's a lyrical treat

[Chorus]
Score my bars, let's see what you got
AI analysis, give it all you've got
From the cleverness to the radio spot
This is hip-hop, and we're taking the top

[Verse 2]
Double entendres, they don't see it coming
Punchlines so hard, got the audience humming
Internal rhymes, the flow is stunning
This is art, and I'm the one running

[Bridge]
From boom bap to trap, I can do it all
Commercial appeal, but still keeping it raw
This is the future, breaking every wall
ScoreMyBars, we're answering the call`
